// Package club holds generated Swagger documentation for the clubgate API.
// Regenerate with: swag init -g internal/club/http/router.go -o api/club
package club

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Marlin Swim Club",
            "url": "https://github.com/marlinswim/clubgate"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Probe",
                "responses": {
                    "200": {
                        "description": "status, uptime, version",
                        "schema": {"$ref": "#/definitions/clubsdk.HealthResponse"}
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Probe",
                "responses": {
                    "200": {
                        "description": "status, uptime, version, checks",
                        "schema": {"$ref": "#/definitions/clubsdk.HealthResponse"}
                    },
                    "503": {
                        "description": "status, uptime, version, checks",
                        "schema": {"$ref": "#/definitions/clubsdk.HealthResponse"}
                    }
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Email and password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/clubsdk.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "token, expires_at, user",
                        "schema": {"$ref": "#/definitions/clubsdk.LoginResponse"}
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "401": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/bootstrap": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Bootstrap First Administrator",
                "parameters": [
                    {
                        "description": "Bootstrap token and admin details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/clubsdk.BootstrapRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "user",
                        "schema": {"$ref": "#/definitions/clubsdk.BootstrapResponse"}
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "401": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "409": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/invitations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Invitations"],
                "summary": "List Invitations",
                "responses": {
                    "200": {
                        "description": "invitations",
                        "schema": {"$ref": "#/definitions/clubsdk.ListInvitationsResponse"}
                    },
                    "401": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    }
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Invitations"],
                "summary": "Create Invitations",
                "parameters": [
                    {
                        "description": "Emails and role",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/clubsdk.CreateInvitationsRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "succeeded, failed",
                        "schema": {"$ref": "#/definitions/clubsdk.CreateInvitationsResponse"}
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "401": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/invitations/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Invitations"],
                "summary": "Delete Invitation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Invitation ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {"description": "no content"},
                    "401": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/invitations/{id}/resend": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Invitations"],
                "summary": "Resend Invitation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Invitation ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {"description": "no content"},
                    "401": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "409": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "502": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Registration"],
                "summary": "Register",
                "parameters": [
                    {
                        "description": "Token, email, name and password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/clubsdk.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "user",
                        "schema": {"$ref": "#/definitions/clubsdk.RegisterResponse"}
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "401": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "409": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "410": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/register/accept": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Registration"],
                "summary": "Accept Invitation",
                "parameters": [
                    {
                        "description": "Invitation id and accepting user id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/clubsdk.AcceptRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "no content"},
                    "400": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "409": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "410": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/register/verify": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Registration"],
                "summary": "Verify Invitation",
                "parameters": [
                    {
                        "description": "Token and email from the link",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/clubsdk.VerifyRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "invitation_id, email, role",
                        "schema": {"$ref": "#/definitions/clubsdk.VerifyResponse"}
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "401": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    },
                    "410": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/clubsdk.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "clubsdk.AcceptRequest": {
            "type": "object",
            "properties": {
                "invitation_id": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "clubsdk.BootstrapRequest": {
            "type": "object",
            "properties": {
                "bootstrap_token": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "clubsdk.BootstrapResponse": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/clubsdk.User"}
            }
        },
        "clubsdk.CreateInvitationsRequest": {
            "type": "object",
            "properties": {
                "emails": {
                    "type": "array",
                    "items": {"type": "string"}
                },
                "role": {"type": "string"}
            }
        },
        "clubsdk.CreateInvitationsResponse": {
            "type": "object",
            "properties": {
                "failed": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/clubsdk.FailedInvitation"}
                },
                "succeeded": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            }
        },
        "clubsdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "error_description": {"type": "string"}
            }
        },
        "clubsdk.FailedInvitation": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "clubsdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"}
            }
        },
        "clubsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {"$ref": "#/definitions/clubsdk.HealthChecks"},
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "clubsdk.Invitation": {
            "type": "object",
            "properties": {
                "accepted_at": {"type": "string"},
                "accepted_by": {"type": "string"},
                "created_at": {"type": "string"},
                "created_by": {"type": "string"},
                "email": {"type": "string"},
                "expired": {"type": "boolean"},
                "expires_at": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "clubsdk.ListInvitationsResponse": {
            "type": "object",
            "properties": {
                "invitations": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/clubsdk.Invitation"}
                }
            }
        },
        "clubsdk.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "clubsdk.LoginResponse": {
            "type": "object",
            "properties": {
                "expires_at": {"type": "string"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/clubsdk.User"}
            }
        },
        "clubsdk.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "clubsdk.RegisterResponse": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/clubsdk.User"}
            }
        },
        "clubsdk.User": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "clubsdk.VerifyRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "clubsdk.VerifyResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "invitation_id": {"type": "string"},
                "role": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT session token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "ClubGate API",
	Description:      "Invitation-gated registration and login service for a swim club.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
