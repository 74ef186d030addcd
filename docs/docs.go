// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "tags": [
        {"name": "Status", "description": "Status cards and uptime sweeps"},
        {"name": "Submissions", "description": "Anonymous course material submissions"},
        {"name": "Moderation", "description": "Admin review of submissions"},
        {"name": "Calendar", "description": "Upcoming campus events"},
        {"name": "Health", "description": "Liveness and readiness"}
    ],
    "securityDefinitions": {
        "AdminToken": {"type": "apiKey", "in": "header", "name": "X-Admin-Token"}
    },
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Store unreachable", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/status": {
            "get": {
                "tags": ["Status"],
                "summary": "Get status",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StatusEnvelope"}}
                }
            },
            "post": {
                "tags": ["Status"],
                "summary": "Update status",
                "description": "Supplied fields replace the stored ones wholesale. Monitor results are never touched.",
                "security": [{"AdminToken": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StatusEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Stale revision", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/uptime-check": {
            "post": {
                "tags": ["Status"],
                "summary": "Run monitor sweep",
                "description": "Accepts any method. Skipped when the previous sweep ran less than the minimum interval ago.",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SweepEnvelope"}}
                }
            }
        },
        "/api/submissions": {
            "get": {
                "tags": ["Submissions"],
                "summary": "List approved submissions",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SubmissionsEnvelope"}}
                }
            },
            "post": {
                "tags": ["Submissions"],
                "summary": "Create submission",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSubmissionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SubmissionEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/submissions/rate": {
            "post": {
                "tags": ["Submissions"],
                "summary": "Rate an approved submission",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RateSubmissionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/admin/submissions": {
            "get": {
                "tags": ["Moderation"],
                "summary": "List all submissions",
                "security": [{"AdminToken": []}],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SubmissionsEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/admin/submissions/review": {
            "post": {
                "tags": ["Moderation"],
                "summary": "Approve or reject a pending submission",
                "security": [{"AdminToken": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReviewSubmissionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SubmissionEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Already reviewed", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/calendar": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Upcoming events for the next seven days",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CalendarEnvelope"}},
                    "500": {"description": "Feed not configured", "schema": {"$ref": "#/definitions/Error"}},
                    "502": {"description": "Feed unreachable", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "error": {"type": "string"},
                "code": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "ManualStatusItem": {
            "type": "object",
            "required": ["id", "title", "severity"],
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "message": {"type": "string"},
                "severity": {"type": "string", "enum": ["ok", "info", "warn", "down"]},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "Monitor": {
            "type": "object",
            "required": ["id", "name", "targetUrl"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "targetUrl": {"type": "string", "format": "uri"}
            }
        },
        "MonitorResult": {
            "type": "object",
            "properties": {
                "monitorId": {"type": "string"},
                "ok": {"type": "boolean"},
                "httpStatus": {"type": "integer"},
                "checkedAt": {"type": "string", "format": "date-time"}
            }
        },
        "StatusDocument": {
            "type": "object",
            "properties": {
                "manualItems": {"type": "array", "items": {"$ref": "#/definitions/ManualStatusItem"}},
                "monitors": {"type": "array", "items": {"$ref": "#/definitions/Monitor"}},
                "monitorResults": {"type": "object", "additionalProperties": {"$ref": "#/definitions/MonitorResult"}},
                "lastAutoRunAt": {"type": "string", "format": "date-time"},
                "revision": {"type": "integer"}
            }
        },
        "StatusEnvelope": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "state": {"$ref": "#/definitions/StatusDocument"}
            }
        },
        "UpdateStatusRequest": {
            "type": "object",
            "properties": {
                "manualItems": {"type": "array", "items": {"$ref": "#/definitions/ManualStatusItem"}},
                "monitors": {"type": "array", "items": {"$ref": "#/definitions/Monitor"}},
                "revision": {"type": "integer"}
            }
        },
        "SweepEnvelope": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "skipped": {"type": "boolean"},
                "reason": {"type": "string"},
                "checkedAt": {"type": "string", "format": "date-time"},
                "monitorsChecked": {"type": "integer"}
            }
        },
        "Submission": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "course": {"type": "string"},
                "category": {"type": "string", "enum": ["notes", "exam", "study-guide", "other"]},
                "fileUrl": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "approved", "rejected"]},
                "createdAt": {"type": "string", "format": "date-time"},
                "reviewedAt": {"type": "string", "format": "date-time"},
                "reviewerNote": {"type": "string"},
                "rating": {"type": "number"},
                "ratingCount": {"type": "integer"}
            }
        },
        "SubmissionEnvelope": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "submission": {"$ref": "#/definitions/Submission"}
            }
        },
        "SubmissionsEnvelope": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "submissions": {"type": "array", "items": {"$ref": "#/definitions/Submission"}}
            }
        },
        "CreateSubmissionRequest": {
            "type": "object",
            "required": ["title", "course", "category", "fileUrl"],
            "properties": {
                "title": {"type": "string"},
                "course": {"type": "string"},
                "category": {"type": "string", "enum": ["notes", "exam", "study-guide", "other"]},
                "fileUrl": {"type": "string"}
            }
        },
        "ReviewSubmissionRequest": {
            "type": "object",
            "required": ["id", "action"],
            "properties": {
                "id": {"type": "string"},
                "action": {"type": "string", "enum": ["approve", "reject"]},
                "note": {"type": "string", "maxLength": 500}
            }
        },
        "RateSubmissionRequest": {
            "type": "object",
            "required": ["id", "rating"],
            "properties": {
                "id": {"type": "string"},
                "rating": {"type": "integer", "minimum": 1, "maximum": 5}
            }
        },
        "CalendarEvent": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "start": {"type": "string", "format": "date-time"},
                "end": {"type": "string", "format": "date-time"},
                "location": {"type": "string"}
            }
        },
        "CalendarEnvelope": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "source": {"type": "string", "enum": ["cache", "live"]},
                "events": {"type": "array", "items": {"$ref": "#/definitions/CalendarEvent"}}
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
	Title:            "Campus Hub API",
	Description:      "Status board, uptime sweeps, course material moderation and campus calendar.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
