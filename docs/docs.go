package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "EcoTrack API Documentation",
        "title": "EcoTrack API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/actions": {
            "get": {
                "tags": ["Actions"],
                "summary": "List actions",
                "description": "List all sustainability actions in insertion order",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Array of actions",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Action"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": ["Actions"],
                "summary": "Create action",
                "description": "Create a new sustainability action",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "action",
                        "description": "Action fields",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ActionFields"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created action",
                        "schema": {
                            "$ref": "#/definitions/Action"
                        }
                    },
                    "400": {
                        "description": "Validation failed; body maps field names to message lists"
                    }
                }
            }
        },
        "/api/actions/{id}": {
            "get": {
                "tags": ["Actions"],
                "summary": "Get action",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The action",
                        "schema": {
                            "$ref": "#/definitions/Action"
                        }
                    },
                    "404": {
                        "description": "Action not found"
                    }
                }
            },
            "put": {
                "tags": ["Actions"],
                "summary": "Replace action",
                "description": "Full update; every field is required",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "action",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ActionFields"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated action",
                        "schema": {
                            "$ref": "#/definitions/Action"
                        }
                    },
                    "400": {
                        "description": "Validation failed"
                    },
                    "404": {
                        "description": "Action not found"
                    }
                }
            },
            "patch": {
                "tags": ["Actions"],
                "summary": "Update action fields",
                "description": "Partial update; only supplied fields change",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "fields",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ActionFields"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated action",
                        "schema": {
                            "$ref": "#/definitions/Action"
                        }
                    },
                    "400": {
                        "description": "Validation failed"
                    },
                    "404": {
                        "description": "Action not found"
                    }
                }
            },
            "delete": {
                "tags": ["Actions"],
                "summary": "Delete action",
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Action not found"
                    }
                }
            }
        }
    },
    "definitions": {
        "Action": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "action": {
                    "type": "string",
                    "example": "Recycling"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2025-01-08"
                },
                "points": {
                    "type": "integer",
                    "example": 25
                }
            }
        },
        "ActionFields": {
            "type": "object",
            "properties": {
                "action": {
                    "type": "string",
                    "example": "Recycling"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2025-01-08"
                },
                "points": {
                    "type": "integer",
                    "example": 25
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "EcoTrack API",
	Description:      "EcoTrack API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
