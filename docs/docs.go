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
        "/api/v1/calendar/days": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Calendar grid of a month",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "year", "in": "query"},
                    {"type": "integer", "description": "Month (1-12)", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.monthDaysResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/calendar/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Hours balance of a month",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "year", "in": "query"},
                    {"type": "integer", "description": "Month (1-12)", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.monthSummaryResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/classify": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Classify a message without running it",
                "parameters": [
                    {"description": "Message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.classifyReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.classifyResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/confirmations": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Answer the pending confirmation",
                "parameters": [
                    {"description": "Answer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.confirmationReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Conflict - nothing pending", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/exports/{id}": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["Chat"],
                "summary": "Download a CSV export",
                "parameters": [
                    {"type": "string", "description": "Export ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/messages": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Send a chat message",
                "parameters": [
                    {"description": "Message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.messageReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/sessions/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Reset a chat session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.resetResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "http.chatResp": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "messages": {"type": "array", "items": {"type": "string"}},
                "pending_confirmation": {"type": "string"},
                "exports": {"type": "array", "items": {"$ref": "#/definitions/http.exportResp"}},
                "refresh": {"$ref": "#/definitions/http.refreshResp"}
            }
        },
        "http.classifyReq": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "maxLength": 2000},
                "displayed_year": {"type": "integer"},
                "displayed_month": {"type": "integer", "minimum": 1, "maximum": 12}
            }
        },
        "http.classifyResp": {
            "type": "object",
            "properties": {
                "intent": {"type": "string"},
                "matched": {"type": "boolean"},
                "payload": {}
            }
        },
        "http.confirmationReq": {
            "type": "object",
            "required": ["session_id", "confirmed"],
            "properties": {
                "session_id": {"type": "string"},
                "confirmed": {"type": "boolean"},
                "displayed_year": {"type": "integer"},
                "displayed_month": {"type": "integer", "minimum": 1, "maximum": 12}
            }
        },
        "http.dayResp": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "weekend": {"type": "boolean"},
                "holiday": {"type": "string"},
                "hours": {"type": "number"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/http.entryResp"}}
            }
        },
        "http.entryResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "project": {"type": "string"},
                "task_name": {"type": "string"},
                "hours": {"type": "number"},
                "detail": {"type": "string"}
            }
        },
        "http.exportResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "filename": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "http.messageReq": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "session_id": {"type": "string"},
                "text": {"type": "string", "maxLength": 2000},
                "displayed_year": {"type": "integer"},
                "displayed_month": {"type": "integer", "minimum": 1, "maximum": 12}
            }
        },
        "http.monthDaysResp": {
            "type": "object",
            "properties": {
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "days": {"type": "array", "items": {"$ref": "#/definitions/http.dayResp"}}
            }
        },
        "http.monthSummaryResp": {
            "type": "object",
            "properties": {
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "label": {"type": "string"},
                "working_days": {"type": "integer"},
                "loaded_hours": {"type": "number"},
                "working_hours": {"type": "number"},
                "pending_hours": {"type": "number"}
            }
        },
        "http.refreshResp": {
            "type": "object",
            "properties": {
                "calendar": {"type": "boolean"},
                "summary": {"type": "boolean"}
            }
        },
        "http.resetResp": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Timesheet Assistant API",
	Description:      "Asistente conversacional para cargar y consultar horas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
