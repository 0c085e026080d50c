// Package docs is generated by swaggo/swag from the handler annotations.
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
        "/api/v1/landing": {
            "get": {
                "produces": ["application/json"],
                "tags": ["landing"],
                "summary": "Landing variants",
                "responses": {
                    "200": {"description": "Variant names", "schema": {"$ref": "#/definitions/http.successResponse"}}
                }
            }
        },
        "/api/v1/landing/{variant}": {
            "get": {
                "description": "Static content of a landing page variant",
                "produces": ["application/json"],
                "tags": ["landing"],
                "summary": "Landing page content",
                "parameters": [
                    {"enum": ["marketing", "classic"], "type": "string", "description": "Variant", "name": "variant", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Landing page", "schema": {"$ref": "#/definitions/http.successResponse"}},
                    "404": {"description": "Unknown variant", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/api/v1/me": {
            "get": {
                "description": "Role and profile stored by the demo sign-in",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current identity",
                "responses": {
                    "200": {"description": "Stored identity", "schema": {"$ref": "#/definitions/http.MeResponse"}},
                    "302": {"description": "Redirect to login when no token is stored"}
                }
            }
        },
        "/api/v1/session": {
            "post": {
                "description": "Checks demo credentials and stores the token and role cookies",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Demo sign-in",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.LoginRequest"}}
                ],
                "responses": {
                    "201": {"description": "Session created", "schema": {"$ref": "#/definitions/http.SessionResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "delete": {
                "tags": ["session"],
                "summary": "Sign out",
                "responses": {
                    "204": {"description": "Session cleared"}
                }
            }
        },
        "/api/v1/theme": {
            "get": {
                "description": "Color mode, brand palette and component defaults",
                "produces": ["application/json"],
                "tags": ["theme"],
                "summary": "Theme configuration",
                "responses": {
                    "200": {"description": "Theme", "schema": {"$ref": "#/definitions/domain.Theme"}}
                }
            }
        }
    },
    "definitions": {
        "domain.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "domain.ProjectRef": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "domain.UserProfile": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "projects": {"type": "array", "items": {"$ref": "#/definitions/domain.ProjectRef"}},
                "role": {"type": "string"}
            }
        },
        "domain.Theme": {
            "type": "object",
            "properties": {
                "config": {"type": "object"},
                "styles": {"type": "object"},
                "colors": {"type": "object"},
                "components": {"type": "object"}
            }
        },
        "http.MeResponse": {
            "type": "object",
            "properties": {
                "role": {"type": "string", "example": "admin"},
                "user": {"$ref": "#/definitions/domain.UserProfile"}
            }
        },
        "http.SessionResponse": {
            "type": "object",
            "properties": {
                "destination": {"type": "string", "example": "/employee/dashboard"},
                "role": {"type": "string", "example": "employee"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.UserProfile"}
            }
        },
        "http.errorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Error message"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "http.successResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string", "example": "Success message"},
                "success": {"type": "boolean", "example": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CogniWork Web API",
	Description:      "Landing content, theme and demo session endpoints",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
