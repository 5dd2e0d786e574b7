// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/inkfolio/main.go -o docs
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/content": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "List published reflections",
                "parameters": [
                    {"type": "string", "description": "blog, journal or artwork", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReflectionListDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "Create a reflection",
                "parameters": [
                    {"description": "Reflection", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateReflectionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ReflectionDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/content/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "List content categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryDTO"}}}
                }
            }
        },
        "/content/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "Get a published reflection",
                "parameters": [
                    {"type": "string", "description": "Reflection ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReflectionDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "Update a reflection",
                "parameters": [
                    {"type": "string", "description": "Reflection ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateReflectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReflectionDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "Delete a reflection",
                "parameters": [
                    {"type": "string", "description": "Reflection ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/content-admin": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "List all reflections",
                "parameters": [
                    {"type": "string", "description": "blog, journal or artwork", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReflectionListDTO"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/contact": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Contact"],
                "summary": "Submit the contact form",
                "parameters": [
                    {"description": "Contact form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SubmitContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SubmitContactResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/contact-submissions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Contact"],
                "summary": "List contact submissions",
                "parameters": [
                    {"type": "string", "description": "new, read or replied", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.SubmissionDTO"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/contact-submissions/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Contact"],
                "summary": "Update a submission's status",
                "parameters": [
                    {"type": "string", "description": "Submission ID", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SubmissionDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/admin/verify": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Check the admin session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.VerifyResponse"}}
                }
            }
        },
        "/admin/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Admin logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "utils.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "message": {"type": "string"},
                "error": {"$ref": "#/definitions/utils.ErrorInfo"}
            }
        },
        "utils.ErrorInfo": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "dto.ReflectionDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "excerpt": {"type": "string"},
                "content": {"type": "string"},
                "content_html": {"type": "string"},
                "category": {"type": "string", "enum": ["blog", "journal", "artwork"]},
                "tags": {"type": "array", "items": {"type": "string"}},
                "published": {"type": "boolean"},
                "read_time": {"type": "string"},
                "date": {"type": "string", "format": "date-time"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "dto.ReflectionListDTO": {
            "type": "object",
            "properties": {
                "reflections": {"type": "array", "items": {"$ref": "#/definitions/dto.ReflectionDTO"}},
                "total": {"type": "integer"},
                "categories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.CategoryDTO": {
            "type": "object",
            "properties": {
                "value": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "dto.CreateReflectionRequest": {
            "type": "object",
            "required": ["title", "excerpt", "content", "category"],
            "properties": {
                "title": {"type": "string", "maxLength": 200},
                "excerpt": {"type": "string", "maxLength": 500},
                "content": {"type": "string"},
                "category": {"type": "string", "enum": ["blog", "journal", "artwork"]},
                "tags": {"type": "array", "items": {"type": "string"}},
                "published": {"type": "boolean"},
                "date": {"type": "string", "format": "date-time"}
            }
        },
        "dto.UpdateReflectionRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 200},
                "excerpt": {"type": "string", "maxLength": 500},
                "content": {"type": "string"},
                "category": {"type": "string", "enum": ["blog", "journal", "artwork"]},
                "tags": {"type": "array", "items": {"type": "string"}},
                "published": {"type": "boolean"},
                "date": {"type": "string", "format": "date-time"}
            }
        },
        "dto.SubmitContactRequest": {
            "type": "object",
            "required": ["name", "email", "reason", "message"],
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "email": {"type": "string"},
                "reason": {"type": "string", "enum": ["yoga", "investment", "collaboration", "other"]},
                "message": {"type": "string", "maxLength": 2000}
            }
        },
        "dto.SubmitContactResult": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.SubmissionDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "reason": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "string", "enum": ["new", "read", "replied"]},
                "submitted_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "dto.UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["new", "read", "replied"]}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "expires_at": {"type": "string", "format": "date-time"}
            }
        },
        "dto.VerifyResponse": {
            "type": "object",
            "properties": {
                "valid": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inkfolio API",
	Description:      "Portfolio and blog content backend with a public contact form.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
