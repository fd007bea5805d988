// Package services contains the application's business operations. Read-side
// queries live in CatalogService, DownloadService and StatsService; the
// write side is IngestionService (upload/delete) and ContactService. Each
// service consumes the narrow store interfaces declared in the repositories
// package so tests can substitute in-memory fakes.
package services
