// Package docs holds the OpenAPI document served under /swagger.
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
		"/": {
			"get": {
				"summary": "Liveness string",
				"tags": [
					"health"
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
		"/jwt": {
			"post": {
				"summary": "Issue a signed credential for the submitted identity payload",
				"tags": [
					"auth"
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
						"name": "body",
						"in": "body",
						"required": true,
						"description": "identity payload, usually {\"email\": ...}",
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/allUsers": {
			"get": {
				"summary": "List all users",
				"tags": [
					"allUsers"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"summary": "Create user",
				"tags": [
					"allUsers"
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
						"name": "body",
						"in": "body",
						"required": true,
						"description": "user document",
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/allUsers/admin/{email}": {
			"get": {
				"summary": "Report whether the email belongs to an administrator",
				"tags": [
					"allUsers"
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
						"name": "email",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "user email"
					}
				]
			}
		},
		"/allUsers/{email}": {
			"get": {
				"summary": "Fetch user by email",
				"tags": [
					"allUsers"
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
						"name": "email",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "user email"
					}
				]
			}
		},
		"/allUsers/{id}": {
			"patch": {
				"summary": "Replace name, email and role",
				"tags": [
					"allUsers"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "document id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "name, email, role",
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"summary": "Delete user",
				"tags": [
					"allUsers"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "document id"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/clubUsers": {
			"get": {
				"summary": "List club members",
				"tags": [
					"clubUsers"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"summary": "Create club member",
				"tags": [
					"clubUsers"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "member document",
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/clubUsers/{id}": {
			"get": {
				"summary": "Fetch club member",
				"tags": [
					"clubUsers"
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
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "document id"
					}
				]
			},
			"patch": {
				"summary": "Replace club member fields",
				"tags": [
					"clubUsers"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "document id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "member fields",
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"summary": "Delete club member",
				"tags": [
					"clubUsers"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "document id"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/clubUsers/{id}/image": {
			"post": {
				"summary": "Upload club member image",
				"tags": [
					"clubUsers"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "document id"
					},
					{
						"name": "image",
						"in": "formData",
						"required": true,
						"type": "file"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/leaderboard": {
			"get": {
				"summary": "Club members by max rating, descending",
				"tags": [
					"clubUsers"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					}
				},
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": true,
						"type": "integer",
						"description": "zero-based page index"
					},
					{
						"name": "size",
						"in": "query",
						"required": true,
						"type": "integer",
						"description": "page size"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/clubUsersCount": {
			"get": {
				"summary": "Number of club members",
				"tags": [
					"clubUsers"
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
		"/codeforcesContestList": {
			"get": {
				"summary": "List contests",
				"tags": [
					"contests"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"summary": "Create contest",
				"tags": [
					"contests"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "contest document",
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/codeforcesContstList/{id}": {
			"get": {
				"summary": "Fetch contest by document id",
				"tags": [
					"contests"
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
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "document id"
					}
				]
			}
		},
		"/codeforcesSingleContestName": {
			"get": {
				"summary": "Fetch contest by Codeforces contest id",
				"tags": [
					"contests"
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
						"name": "contestId",
						"in": "query",
						"required": true,
						"type": "integer",
						"description": "Codeforces contest id"
					}
				]
			}
		},
		"/codeforcesContestList/{id}": {
			"patch": {
				"summary": "Replace contest fields",
				"tags": [
					"contests"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "document id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "contest fields",
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"summary": "Delete contest",
				"tags": [
					"contests"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "document id"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/codeforcesContestParticipantsResultsCountByContestId/{contestId}": {
			"get": {
				"summary": "Count participants of a contest",
				"tags": [
					"results"
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
						"name": "contestId",
						"in": "path",
						"required": true,
						"type": "integer",
						"description": "Codeforces contest id"
					}
				]
			}
		},
		"/codeforcesContestParticipantsResultsByContestId": {
			"get": {
				"summary": "Participants of a contest by global standing",
				"tags": [
					"results"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					}
				},
				"parameters": [
					{
						"name": "contestId",
						"in": "query",
						"required": true,
						"type": "integer",
						"description": "Codeforces contest id"
					},
					{
						"name": "page",
						"in": "query",
						"required": true,
						"type": "integer",
						"description": "zero-based page index"
					},
					{
						"name": "size",
						"in": "query",
						"required": true,
						"type": "integer",
						"description": "page size"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/codeforcesContestNonParticipantsResultsCountByContestId/{contestId}": {
			"get": {
				"summary": "Count non-participants of a contest",
				"tags": [
					"results"
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
						"name": "contestId",
						"in": "path",
						"required": true,
						"type": "integer",
						"description": "Codeforces contest id"
					}
				]
			}
		},
		"/codeforcesContestNonParticipantsResultsByContestId": {
			"get": {
				"summary": "Non-participants of a contest by global standing",
				"tags": [
					"results"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					}
				},
				"parameters": [
					{
						"name": "contestId",
						"in": "query",
						"required": true,
						"type": "integer",
						"description": "Codeforces contest id"
					},
					{
						"name": "page",
						"in": "query",
						"required": true,
						"type": "integer",
						"description": "zero-based page index"
					},
					{
						"name": "size",
						"in": "query",
						"required": true,
						"type": "integer",
						"description": "page size"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/codeforcesContestAllUserResultCountByContestId/{contestId}": {
			"get": {
				"summary": "Count every result of a contest",
				"tags": [
					"results"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "contestId",
						"in": "path",
						"required": true,
						"type": "integer",
						"description": "Codeforces contest id"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/codeforcesContestIndividualUserResult": {
			"get": {
				"summary": "Fetch one result by contest and handle",
				"tags": [
					"results"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "contestId",
						"in": "query",
						"required": true,
						"type": "integer",
						"description": "Codeforces contest id"
					},
					{
						"name": "codeforcesHandle",
						"in": "query",
						"required": true,
						"type": "string",
						"description": "Codeforces handle"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"summary": "Insert one result",
				"tags": [
					"results"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "result document",
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/codeforcesContestAllUserResult/{contestId}": {
			"delete": {
				"summary": "Delete every result of a contest",
				"tags": [
					"results"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "contestId",
						"in": "path",
						"required": true,
						"type": "integer",
						"description": "Codeforces contest id"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/codeforcesContestIndividualUserResult/{codeforcesHandle}": {
			"delete": {
				"summary": "Delete every result of a handle",
				"tags": [
					"results"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized access"
					},
					"403": {
						"description": "forbidden access"
					}
				},
				"parameters": [
					{
						"name": "codeforcesHandle",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Codeforces handle"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/ws/leaderboard": {
			"get": {
				"summary": "Websocket stream of club member changes",
				"tags": [
					"realtime"
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
		"/ws/contests/{contestId}": {
			"get": {
				"summary": "Websocket stream of result changes for a contest",
				"tags": [
					"realtime"
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
						"name": "contestId",
						"in": "path",
						"required": true,
						"type": "integer",
						"description": "Codeforces contest id"
					}
				]
			}
		},
		"/metrics": {
			"get": {
				"summary": "Prometheus metrics",
				"tags": [
					"health"
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
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "XPSC Server API",
	Description:      "REST backend of the XPSC competitive programming club.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
