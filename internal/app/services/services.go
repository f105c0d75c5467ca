// Package services holds the application logic behind the HTTP and CLI
// surfaces.
//
// Services defined in this package:
// - CatalogService: loads course files and answers listing and lookup queries
package services
