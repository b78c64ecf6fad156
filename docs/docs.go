// Package docs registers the OpenAPI description served at /swagger.
// Keep it in step with the @Summary/@Router annotations in internal/http.
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
        "/ballot": {
            "get": {
                "description": "Candidates ranked by votes with percentages, the leader and the vote total.",
                "produces": ["application/json"],
                "tags": ["ballot"],
                "summary": "Current ballot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ballot.View"}}
                }
            }
        },
        "/ballot/stream": {
            "get": {
                "description": "Server-sent events; one \"ballot\" event with the full view after every change.",
                "produces": ["text/event-stream"],
                "tags": ["ballot"],
                "summary": "Ballot stream",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/candidates": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Add candidate",
                "parameters": [
                    {"description": "Candidate", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.addCandidateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ballot.Candidate"}},
                    "400": {"description": "invalid body or empty fields", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/candidates/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Get candidate",
                "parameters": [
                    {"type": "string", "description": "Candidate ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ballot.Entry"}},
                    "404": {"description": "not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/candidates/{id}/vote": {
            "post": {
                "description": "Unknown ids are ignored and still answer 204.",
                "tags": ["candidates"],
                "summary": "Vote for a candidate",
                "parameters": [
                    {"type": "string", "description": "Candidate ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "429": {"description": "rate limited", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/intake": {
            "get": {
                "produces": ["application/json"],
                "tags": ["intake"],
                "summary": "Intake dialog state",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/intake.Status"}}}
            }
        },
        "/intake/open": {
            "post": {
                "produces": ["application/json"],
                "tags": ["intake"],
                "summary": "Open the add-candidate dialog",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/intake.Status"}}}
            }
        },
        "/intake/close": {
            "post": {
                "produces": ["application/json"],
                "tags": ["intake"],
                "summary": "Close the add-candidate dialog without submitting",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/intake.Status"}}}
            }
        },
        "/intake/draft": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["intake"],
                "summary": "Update draft fields",
                "parameters": [
                    {"description": "Draft", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.intakeFieldsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/intake.Status"}},
                    "409": {"description": "dialog closed", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/intake/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["intake"],
                "summary": "Submit the add-candidate dialog",
                "parameters": [
                    {"description": "Candidate", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.intakeFieldsRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ballot.Candidate"}},
                    "400": {"description": "empty fields", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "dialog closed", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "api.addCandidateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "photo_url": {"type": "string"}
            }
        },
        "api.intakeFieldsRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "photo_url": {"type": "string"}
            }
        },
        "ballot.Candidate": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "photo_url": {"type": "string"},
                "votes": {"type": "integer"}
            }
        },
        "ballot.Entry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "percentage": {"type": "number"},
                "photo_url": {"type": "string"},
                "votes": {"type": "integer"}
            }
        },
        "ballot.View": {
            "type": "object",
            "properties": {
                "candidates": {"type": "array", "items": {"$ref": "#/definitions/ballot.Entry"}},
                "leader": {"$ref": "#/definitions/ballot.Entry"},
                "total_votes": {"type": "integer"}
            }
        },
        "intake.Draft": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "photo_url": {"type": "string"}
            }
        },
        "intake.Status": {
            "type": "object",
            "properties": {
                "draft": {"$ref": "#/definitions/intake.Draft"},
                "state": {"type": "string", "enum": ["closed", "open"]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Live Voting Dashboard API",
	Description:      "In-memory ballot with live vote counts, percentages and a current leader",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
