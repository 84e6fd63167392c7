// Package docs holds the OpenAPI document served at /docs/swagger.json.
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
    "paths": {
        "/": {
            "get": {
                "produces": ["text/html"],
                "tags": ["index"],
                "summary": "Landing page",
                "responses": {"200": {"description": "HTML page", "schema": {"type": "string"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Response"}}}
            }
        },
        "/chat/gemini-pro": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Chat with Gemini",
                "parameters": [{"description": "Conversation", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/chat.GeminiRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/chat.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/chat/bison": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Chat with chat-bison",
                "parameters": [{"description": "Conversation", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/chat.BisonRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/chat.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/chat/gemini-pro-v": {
            "post": {
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Multimodal chat",
                "responses": {"501": {"description": "Not Implemented", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}
            }
        },
        "/sql": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["sql"],
                "summary": "Generate BigQuery SQL",
                "parameters": [{"description": "Natural language question", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/sql.Request"}}],
                "responses": {
                    "200": {"description": "SQL statement", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search an engine",
                "parameters": [
                    {"type": "string", "description": "Search query", "name": "query", "in": "query", "required": true},
                    {"type": "string", "description": "Search engine id", "name": "engine", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/search.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "chat.Message": {
            "type": "object",
            "properties": {
                "role": {"type": "string", "example": "user"},
                "content": {"type": "string", "example": "How are you?"}
            }
        },
        "chat.GeminiRequest": {
            "type": "object",
            "properties": {
                "model_name": {"type": "string", "enum": ["gemini-1.0-pro", "gemini-1.5-pro"]},
                "messages": {"type": "array", "items": {"$ref": "#/definitions/chat.Message"}},
                "temperature": {"type": "number"},
                "top_p": {"type": "number"},
                "top_k": {"type": "integer"},
                "max_output_tokens": {"type": "integer"},
                "candidate_count": {"type": "integer"}
            }
        },
        "chat.BisonRequest": {
            "type": "object",
            "properties": {
                "messages": {"type": "array", "items": {"$ref": "#/definitions/chat.Message"}},
                "temperature": {"type": "number"},
                "top_p": {"type": "number"},
                "top_k": {"type": "integer"},
                "max_output_tokens": {"type": "integer"},
                "candidate_count": {"type": "integer"}
            }
        },
        "chat.Response": {
            "type": "object",
            "properties": {
                "role": {"type": "string", "example": "model"},
                "content": {"type": "string"}
            }
        },
        "sql.Request": {
            "type": "object",
            "properties": {"query": {"type": "string"}}
        },
        "search.Response": {
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"$ref": "#/definitions/search.Result"}},
                "summary": {"$ref": "#/definitions/search.Summary"}
            }
        },
        "search.Result": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "snippets": {"type": "array", "items": {"type": "string"}},
                "link": {"type": "string"}
            }
        },
        "search.Summary": {
            "type": "object",
            "properties": {
                "summary_text": {"type": "string"},
                "safety_attributes": {
                    "type": "object",
                    "properties": {
                        "categories": {"type": "array", "items": {"type": "string"}},
                        "scores": {"type": "array", "items": {"type": "number"}}
                    }
                },
                "summary_with_metadata": {
                    "type": "object",
                    "properties": {
                        "summary": {"type": "string"},
                        "references": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "properties": {"title": {"type": "string"}, "document": {"type": "string"}}
                            }
                        }
                    }
                }
            }
        },
        "health.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "service": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"}
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
	Title:            "vertexgate API",
	Description:      "HTTP gateway for Vertex AI chat, text-to-SQL and enterprise search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
