// Package docs registers the Swagger document served at /swagger. The template
// mirrors the handler annotations; keep both in sync when routes change.
package docs

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
        "/ping": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List service orders",
                "parameters": [
                    {"type": "string", "description": "Shop token", "name": "token", "in": "query", "required": true},
                    {"type": "string", "description": "Order number contains", "name": "number", "in": "query"},
                    {"type": "string", "description": "Client name contains (accent insensitive)", "name": "client_name", "in": "query"},
                    {"type": "integer", "description": "1-based page", "name": "page", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.OrderPageResponse"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Create an order",
                "responses": {
                    "201": {"description": "Created"},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/orders/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Reload the orders of the shop from the remote API",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.OrderPageResponse"}}}
            }
        },
        "/orders/export": {
            "get": {
                "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["orders"],
                "summary": "Export the filtered listing",
                "parameters": [
                    {"type": "string", "description": "csv (default) or xlsx", "name": "format", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/orders/draft": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Blank create form",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/orders/validate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Validate a form without submitting it",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/orders/bills/remove": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Remove a bill line from a form",
                "responses": {
                    "200": {"description": "OK"},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/orders/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Update an order",
                "parameters": [{"type": "string", "description": "Order id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/orders/{id}/form": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Update form seeded from an existing order",
                "parameters": [{"type": "string", "description": "Order id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/orders/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Change the status of an order",
                "parameters": [{"type": "string", "description": "Order id", "name": "id", "in": "path", "required": true}],
                "responses": {"202": {"description": "Accepted"}}
            }
        },
        "/orders/{number}": {
            "delete": {
                "tags": ["orders"],
                "summary": "Delete an order",
                "parameters": [
                    {"type": "string", "description": "Order number", "name": "number", "in": "path", "required": true},
                    {"type": "boolean", "description": "Must be true", "name": "confirm", "in": "query", "required": true}
                ],
                "responses": {
                    "202": {"description": "Accepted"},
                    "428": {"description": "Precondition Required", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/sync/{number}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Background commit journal of an order",
                "parameters": [{"type": "string", "description": "Order number", "name": "number", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/clients": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Client suggestions",
                "parameters": [{"type": "string", "description": "Name contains (accent insensitive)", "name": "q", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/payments/{number}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Latest payment of an order",
                "parameters": [
                    {"type": "string", "description": "Order number", "name": "number", "in": "path", "required": true},
                    {"type": "string", "description": "Payment id", "name": "payment_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Charge a concluded order",
                "parameters": [{"type": "string", "description": "Order number", "name": "number", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "pkg.ErrorDetail": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/pkg.ErrorDetail"}}
            }
        },
        "response.OrderRowResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "number": {"type": "string"},
                "client_name": {"type": "string"},
                "status": {"type": "string"},
                "status_color": {"type": "string"},
                "pdf_url": {"type": "string"}
            }
        },
        "response.OrderPageResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/response.OrderRowResponse"}},
                "page": {"type": "integer"},
                "page_count": {"type": "integer"},
                "total_items": {"type": "integer"},
                "has_prev": {"type": "boolean"},
                "has_next": {"type": "boolean"},
                "loading": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "ShopToken": {
            "type": "apiKey",
            "name": "X-Shop-Token",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Ordem de Serviço API",
	Description:      "Service order listing, filters and create/update forms backed by the Estoque Fácil API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
