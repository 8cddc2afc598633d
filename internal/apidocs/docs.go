// Package apidocs holds the OpenAPI document for the viewer's JSON API.
// Regenerate with: swag init -g main.go -o internal/apidocs
package apidocs

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
		"/api/boot": {
			"get": {
				"summary": "Boot sequence and animation timings",
				"tags": [
					"portfolio"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/portfolio.Boot"
						}
					}
				}
			}
		},
		"/api/pages": {
			"get": {
				"summary": "List portfolio pages",
				"tags": [
					"portfolio"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/portfolio.Page"
							}
						}
					}
				}
			}
		},
		"/api/pages/{slug}": {
			"get": {
				"summary": "One portfolio page",
				"tags": [
					"portfolio"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "slug",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/portfolio.Page"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/routes.errorResponse"
						}
					}
				}
			}
		},
		"/api/project": {
			"get": {
				"summary": "Current project tree, open file and buffer",
				"tags": [
					"project"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/editor.View"
						}
					}
				}
			}
		},
		"/api/files": {
			"post": {
				"summary": "Create a file and open it",
				"tags": [
					"project"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/editor.View"
						}
					}
				},
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/routes.createRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/api/folders": {
			"post": {
				"summary": "Create a folder",
				"tags": [
					"project"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/editor.View"
						}
					}
				},
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/routes.createRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/api/rename": {
			"post": {
				"summary": "Rename a node (root refused)",
				"tags": [
					"project"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/editor.View"
						}
					}
				},
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/routes.renameRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/api/move": {
			"post": {
				"summary": "Move a node into a folder or before a file",
				"tags": [
					"project"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/editor.View"
						}
					}
				},
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/routes.moveRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/api/delete": {
			"post": {
				"summary": "Delete a node and its subtree",
				"tags": [
					"project"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/editor.View"
						}
					}
				},
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/routes.nodeRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/api/toggle": {
			"post": {
				"summary": "Collapse or expand a folder",
				"tags": [
					"project"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/editor.View"
						}
					}
				},
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/routes.nodeRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/api/select": {
			"post": {
				"summary": "Select the target folder for create actions",
				"tags": [
					"project"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/editor.View"
						}
					}
				},
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/routes.nodeRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/api/open": {
			"post": {
				"summary": "Open a file in the editor",
				"tags": [
					"project"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/editor.View"
						}
					}
				},
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/routes.nodeRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/api/buffer": {
			"post": {
				"summary": "Replace the editor buffer and arm autosave",
				"tags": [
					"editor"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/routes.bufferRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/api/flush": {
			"post": {
				"summary": "Write a pending autosave now",
				"tags": [
					"editor"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/search": {
			"get": {
				"summary": "Find text in the buffer, wrapping to the start",
				"tags": [
					"editor"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "q",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"name": "from",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "offset in UTF-16 code units, -1 when absent"
					}
				}
			}
		},
		"/api/run": {
			"post": {
				"summary": "Echo print/warn/error string literals of the open file",
				"tags": [
					"editor"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"description": "Nothing is executed. Lines that are not a single print, warn or error call with a quoted literal are ignored."
			}
		},
		"/api/check": {
			"post": {
				"summary": "Syntax check the open file without running it",
				"tags": [
					"editor"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/highlight": {
			"post": {
				"summary": "Highlight Lua source for the editor overlay",
				"tags": [
					"editor"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/routes.bufferRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/api/suggestions": {
			"get": {
				"summary": "Quick-insert snippets",
				"tags": [
					"editor"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/highlight.Suggestion"
							}
						}
					}
				}
			}
		},
		"/api/export": {
			"get": {
				"summary": "Download the project (zip or single file)",
				"tags": [
					"archive"
				],
				"produces": [
					"application/octet-stream"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/export/files": {
			"get": {
				"summary": "List the flattened export files",
				"tags": [
					"archive"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/export/file": {
			"get": {
				"summary": "Download one flattened export file",
				"tags": [
					"archive"
				],
				"produces": [
					"application/octet-stream"
				],
				"parameters": [
					{
						"type": "string",
						"name": "name",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/import": {
			"post": {
				"summary": "Import a .json project or a single source file",
				"tags": [
					"archive"
				],
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "file",
						"name": "file",
						"in": "formData",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/editor.ImportResult"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/routes.errorResponse"
						}
					}
				}
			}
		},
		"/api/events": {
			"get": {
				"summary": "Websocket stream of IDE events",
				"tags": [
					"events"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"description": "Frames are JSON objects {type, ts, data}; type is one of tree, saved, output, replace, pages."
			}
		},
		"/api/events/recent": {
			"get": {
				"summary": "Last events kept by the hub",
				"tags": [
					"events"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/logs": {
			"get": {
				"summary": "Recent log lines",
				"tags": [
					"logs"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/logs/stream": {
			"get": {
				"summary": "Server-sent log tail",
				"tags": [
					"logs"
				],
				"produces": [
					"text/event-stream"
				],
				"parameters": [
					{
						"type": "string",
						"description": "1 replays the buffered entries first",
						"name": "backlog",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		}
	},
	"definitions": {
		"routes.errorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				}
			}
		},
		"routes.createRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"parent_id": {
					"type": "string"
				}
			}
		},
		"routes.renameRequest": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"routes.moveRequest": {
			"type": "object",
			"properties": {
				"source_id": {
					"type": "string"
				},
				"target_id": {
					"type": "string"
				}
			}
		},
		"routes.nodeRequest": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				}
			}
		},
		"routes.bufferRequest": {
			"type": "object",
			"properties": {
				"text": {
					"type": "string"
				},
				"file_id": {
					"type": "string"
				},
				"seq": {
					"type": "integer"
				}
			}
		},
		"project.Row": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"depth": {
					"type": "integer"
				},
				"collapsed": {
					"type": "boolean"
				},
				"active": {
					"type": "boolean"
				}
			}
		},
		"editor.View": {
			"type": "object",
			"properties": {
				"root_name": {
					"type": "string"
				},
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/project.Row"
					}
				},
				"active_file_id": {
					"type": "string"
				},
				"active_name": {
					"type": "string"
				},
				"buffer": {
					"type": "string"
				},
				"selected_folder_id": {
					"type": "string"
				},
				"pending": {
					"type": "boolean"
				},
				"file_count": {
					"type": "integer"
				},
				"edit_seq": {
					"type": "integer"
				}
			}
		},
		"editor.ImportResult": {
			"type": "object",
			"properties": {
				"kind": {
					"type": "string"
				},
				"file_id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"highlight.Suggestion": {
			"type": "object",
			"properties": {
				"label": {
					"type": "string"
				},
				"insert": {
					"type": "string"
				}
			}
		},
		"portfolio.Page": {
			"type": "object",
			"properties": {
				"slug": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"icon": {
					"type": "string"
				},
				"order": {
					"type": "integer"
				},
				"html": {
					"type": "string"
				}
			}
		},
		"portfolio.Boot": {
			"type": "object",
			"properties": {
				"lines": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"kind": {
								"type": "string"
							},
							"text": {
								"type": "string"
							}
						}
					}
				},
				"prompt": {
					"type": "string"
				},
				"intro": {
					"type": "string"
				},
				"loading_steps": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				},
				"timings": {
					"type": "object"
				},
				"stack": {
					"type": "object"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "",
	BasePath:		 "/",
	Schemes:		  []string{},
	Title:			"folio API",
	Description:	  "Portfolio pages and the Lua IDE project API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
