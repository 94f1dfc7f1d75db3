// Package swagger registers the hand-maintained API description served at /swagger/*.
// Keep docTemplate in step with the routes in booktrackr/internal/handler.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/books": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Filtered, sorted and paginated view of the collection",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "sort", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"},
                    {"type": "boolean", "name": "group", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.View"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Add a book",
                "parameters": [
                    {"name": "book", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.BookRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Book"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/books/{bookId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Get a book",
                "parameters": [{"type": "string", "name": "bookId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Book"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Edit a book, id and dateAdded are kept",
                "parameters": [
                    {"type": "string", "name": "bookId", "in": "path", "required": true},
                    {"name": "book", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.BookRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Book"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/echo.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            },
            "delete": {
                "tags": ["books"],
                "summary": "Delete a book",
                "parameters": [{"type": "string", "name": "bookId", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/books/{bookId}/position": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Move a book to a position in the collection order",
                "parameters": [
                    {"type": "string", "name": "bookId", "in": "path", "required": true},
                    {"name": "position", "in": "body", "required": true, "schema": {"type": "object", "properties": {"position": {"type": "integer"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Book"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Status counts, ratings histogram and genre counts",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Stats"}}}
            }
        },
        "/export": {
            "get": {
                "produces": ["application/json"],
                "tags": ["transfer"],
                "summary": "Download the collection as booktrackr-export.json",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Book"}}}}
            }
        },
        "/import": {
            "post": {
                "consumes": ["application/json", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["transfer"],
                "summary": "Replace the collection with a JSON array of books",
                "parameters": [{"type": "file", "name": "file", "in": "formData"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Book"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/suggestions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Title or author autocomplete",
                "parameters": [
                    {"type": "string", "name": "field", "in": "query", "enum": ["title", "author"]},
                    {"type": "string", "name": "prefix", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/progress": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Convert a progress percent into pages read",
                "parameters": [
                    {"type": "number", "name": "percent", "in": "query", "required": true},
                    {"type": "integer", "name": "total", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/theme": {
            "get": {
                "produces": ["application/json"],
                "tags": ["theme"],
                "summary": "Current theme",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["theme"],
                "summary": "Switch between light and dark",
                "parameters": [{"name": "theme", "in": "body", "required": true, "schema": {"type": "object", "properties": {"theme": {"type": "string", "enum": ["light", "dark"]}}}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/echo.HTTPError"}}}
            }
        }
    },
    "definitions": {
        "echo.HTTPError": {
            "type": "object",
            "properties": {"message": {}}
        },
        "model.Book": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "author": {"type": "string"},
                "series": {"type": "string"},
                "bookNumber": {"type": "string"},
                "genre": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "pagesRead": {"type": "integer"},
                "pagesTotal": {"type": "integer"},
                "status": {"type": "string", "enum": ["To Read", "Reading", "Finished"]},
                "rating": {"type": "integer"},
                "notes": {"type": "string"},
                "coverUrl": {"type": "string"},
                "startDate": {"type": "string"},
                "finishDate": {"type": "string"},
                "dateAdded": {"type": "string"}
            }
        },
        "model.BookRequest": {
            "type": "object",
            "required": ["title", "author", "status"],
            "properties": {
                "title": {"type": "string"},
                "author": {"type": "string"},
                "series": {"type": "string"},
                "bookNumber": {"type": "string"},
                "genre": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "pagesRead": {"type": "integer", "minimum": 0},
                "pagesTotal": {"type": "integer", "minimum": 0},
                "status": {"type": "string", "enum": ["To Read", "Reading", "Finished"]},
                "rating": {"type": "integer", "minimum": 1, "maximum": 5},
                "notes": {"type": "string"},
                "coverUrl": {"type": "string"},
                "startDate": {"type": "string"},
                "finishDate": {"type": "string"}
            }
        },
        "model.Stats": {
            "type": "object",
            "properties": {
                "status": {"type": "object", "properties": {"toRead": {"type": "integer"}, "reading": {"type": "integer"}, "finished": {"type": "integer"}}},
                "ratings": {"type": "array", "items": {"type": "integer"}},
                "genres": {"type": "object", "additionalProperties": {"type": "integer"}},
                "total": {"type": "integer"}
            }
        },
        "model.View": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "totalElements": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "items": {"type": "array", "items": {"type": "object"}},
                "groups": {"type": "array", "items": {"type": "object"}},
                "chips": {"type": "array", "items": {"type": "object"}},
                "stats": {"$ref": "#/definitions/model.Stats"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "booktrackr API",
	Description:      "Personal book tracker.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
