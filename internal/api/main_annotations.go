//go:generate swag init --generalInfo main_annotations.go --dir . --parseDependency --output ../../docs/swagger --outputTypes go

// @title           contact-app API
// @version         1.0
// @description     Endpoints for creating, retrieving, updating and deleting contacts.
// @BasePath        /api
package api
