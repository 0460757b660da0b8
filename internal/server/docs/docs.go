// Package docs holds the OpenAPI document served at /docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/criteria": {
            "get": {
                "description": "Returns every criterion in evaluation order with its weight and feedback message",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pwmeter"
                ],
                "summary": "Lists the password criteria",
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/server.commonHttpResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/evaluate": {
            "post": {
                "description": "Scores the password against every criterion and returns the breakdown, feedback and verdict",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pwmeter"
                ],
                "summary": "Evaluates the strength of a password",
                "parameters": [
                    {
                        "description": "Password to evaluate",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/server.handleEvaluateV1Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/server.commonHttpResponse"
                        }
                    },
                    "400": {
                        "description": "bad request",
                        "schema": {
                            "$ref": "#/definitions/server.commonHttpResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/validate": {
            "post": {
                "description": "Evaluates the password and checks it against a minimum score and a list of required criteria",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pwmeter"
                ],
                "summary": "Validates a password against a policy",
                "parameters": [
                    {
                        "description": "Password and policy",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/server.handleValidateV1Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/server.commonHttpResponse"
                        }
                    },
                    "400": {
                        "description": "bad request",
                        "schema": {
                            "$ref": "#/definitions/server.commonHttpResponse"
                        }
                    },
                    "422": {
                        "description": "policy failed",
                        "schema": {
                            "$ref": "#/definitions/server.commonHttpResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "server.commonHttpResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "server.handleEvaluateV1Input": {
            "type": "object",
            "properties": {
                "password": {
                    "type": "string"
                }
            }
        },
        "server.handleValidateV1Input": {
            "type": "object",
            "properties": {
                "minScore": {
                    "type": "integer"
                },
                "password": {
                    "type": "string"
                },
                "required": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Used when the server is started with a bearer token",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "pwmeter API",
	Description:      "Rule-based password strength evaluation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
