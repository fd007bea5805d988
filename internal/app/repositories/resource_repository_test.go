package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/acadvault/internal/app/models"
)

func baseResourceQuery() squirrel.SelectBuilder {
	return squirrel.Select("r.id").
		From("resources r").
		PlaceholderFormat(squirrel.Dollar)
}

func TestApplyResourceFilter_Nil(t *testing.T) {
	sql, args, err := applyResourceFilter(baseResourceQuery(), nil).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestApplyResourceFilter_ProgramOnly(t *testing.T) {
	programID := uuid.New()
	filter := &models.ResourceFilter{ProgramID: &programID}

	sql, args, err := applyResourceFilter(baseResourceQuery(), filter).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "r.program_id = $1")
	assert.NotContains(t, sql, "r.semester")
	require.Len(t, args, 1)
	assert.Equal(t, programID, args[0])
}

func TestApplyResourceFilter_ProgramAndSemester(t *testing.T) {
	programID := uuid.New()
	semester := 2
	filter := &models.ResourceFilter{ProgramID: &programID, Semester: &semester}

	sql, args, err := applyResourceFilter(baseResourceQuery(), filter).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "r.program_id = $1")
	assert.Contains(t, sql, "r.semester = $2")
	require.Len(t, args, 2)
	assert.Equal(t, semester, args[1])
}

// A semester without a program scope is ignored: the generated SQL is
// identical to the unfiltered query.
func TestApplyResourceFilter_SemesterWithoutProgramIgnored(t *testing.T) {
	semester := 3
	filter := &models.ResourceFilter{Semester: &semester}

	filtered, filteredArgs, err := applyResourceFilter(baseResourceQuery(), filter).ToSql()
	require.NoError(t, err)
	unfiltered, unfilteredArgs, err := applyResourceFilter(baseResourceQuery(), nil).ToSql()
	require.NoError(t, err)

	assert.Equal(t, unfiltered, filtered)
	assert.Equal(t, unfilteredArgs, filteredArgs)
}
