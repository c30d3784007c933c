// Package swagger registers the OpenAPI document served at /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/algorithms": {
            "get": {
                "tags": ["scheduler"],
                "summary": "List scheduling algorithms",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/schedules/generate": {
            "post": {
                "tags": ["scheduler"],
                "summary": "Generate a schedule proposal",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/schedules/commit": {
            "post": {
                "tags": ["scheduler"],
                "summary": "Commit a schedule proposal",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/jobs/{jobId}/report": {
            "get": {
                "tags": ["scheduler"],
                "summary": "Schedule report for a job",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/jobs/{jobId}/scheduling-config": {
            "get": {
                "tags": ["scheduler"],
                "summary": "Last-used scheduling config for a job",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/applicants": {
            "get": {
                "tags": ["applicants"],
                "summary": "List applicants",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["applicants"],
                "summary": "Register an applicant",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/applicants/{id}": {
            "get": {
                "tags": ["applicants"],
                "summary": "Fetch an applicant",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "tags": ["applicants"],
                "summary": "Update an applicant",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["applicants"],
                "summary": "Delete an applicant",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/jobs/{jobId}/applicants": {
            "get": {
                "tags": ["applicants"],
                "summary": "List applicants for a job",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/interviewers": {
            "get": {
                "tags": ["interviewers"],
                "summary": "List interviewers",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["interviewers"],
                "summary": "Register an interviewer",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/interviewers/{id}": {
            "get": {
                "tags": ["interviewers"],
                "summary": "Fetch an interviewer",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "tags": ["interviewers"],
                "summary": "Update an interviewer",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["interviewers"],
                "summary": "Delete an interviewer",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/jobs/{jobId}/interviews": {
            "get": {
                "tags": ["interviews"],
                "summary": "List scheduled interviews for a job",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/interviews/{id}": {
            "delete": {
                "tags": ["interviews"],
                "summary": "Cancel a scheduled interview",
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/exports": {
            "post": {
                "tags": ["exports"],
                "summary": "Request a roster export",
                "responses": {"202": {"description": "Accepted"}}
            }
        },
        "/exports/{id}": {
            "get": {
                "tags": ["exports"],
                "summary": "Export job status",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/exports/{id}/download": {
            "get": {
                "tags": ["exports"],
                "summary": "Download a finished export",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Interview Scheduling API",
	Description:      "Interview slot allocation and roster management service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
