package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Jadval API",
        "description": "School timetable management service",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Passphrase access gate"},
        {"name": "Teachers", "description": "Teacher roster"},
        {"name": "Groups", "description": "Student groups"},
        {"name": "Classrooms", "description": "Rooms"},
        {"name": "Lessons", "description": "Lesson bookings and conflict checks"},
        {"name": "Settings", "description": "School-wide configuration"},
        {"name": "Import", "description": "Spreadsheet import flow"},
        {"name": "Export", "description": "Timetable downloads"},
        {"name": "State", "description": "Whole-state hydration and reset"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange the staff passphrase for an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid passphrase"}
                }
            }
        },
        "/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Teachers"],
                "summary": "Create teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeacherRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers/{id}": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Get teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Teachers"],
                "summary": "Replace teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeacherRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Teachers"],
                "summary": "Delete teacher and cascade dependent lessons",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers/{id}/schedule": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Weekly schedule keyed by weekday 1-7",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/lessons": {
            "get": {
                "tags": ["Lessons"],
                "summary": "List lessons",
                "parameters": [
                    {"name": "teacherId", "in": "query", "type": "string"},
                    {"name": "groupId", "in": "query", "type": "string"},
                    {"name": "classroomId", "in": "query", "type": "string"},
                    {"name": "day", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Lessons"],
                "summary": "Book a lesson",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LessonRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Conflicting bookings in meta.conflicts"}
                }
            }
        },
        "/lessons/conflicts": {
            "post": {
                "tags": ["Lessons"],
                "summary": "Preview conflicts for a candidate lesson",
                "parameters": [
                    {"name": "excludeId", "in": "query", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LessonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/slots": {
            "get": {
                "tags": ["Lessons"],
                "summary": "Generate candidate time slots from working hours",
                "parameters": [
                    {"name": "startHour", "in": "query", "type": "integer"},
                    {"name": "endHour", "in": "query", "type": "integer"},
                    {"name": "interval", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "Get school settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Settings"],
                "summary": "Replace school settings",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SettingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/import/parse": {
            "post": {
                "tags": ["Import"],
                "summary": "Upload a workbook and return headers and rows",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/import/preview": {
            "post": {
                "tags": ["Import"],
                "summary": "Reconcile mapped rows without committing",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PreviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/import/commit": {
            "post": {
                "tags": ["Import"],
                "summary": "Apply a previewed batch",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PreviewBatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/xlsx": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the timetable workbook",
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/state": {
            "get": {
                "tags": ["State"],
                "summary": "Full application state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/state/reset": {
            "post": {
                "tags": ["State"],
                "summary": "Restore the seed dataset",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "passphrase": {"type": "string"}
            },
            "required": ["passphrase"]
        },
        "TeacherRequest": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "department": {"type": "string"},
                "color": {"type": "string"}
            },
            "required": ["fullName"]
        },
        "LessonRequest": {
            "type": "object",
            "properties": {
                "teacherId": {"type": "string"},
                "groupId": {"type": "string"},
                "classroomId": {"type": "string"},
                "dayOfWeek": {"type": "integer"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "note": {"type": "string"},
                "force": {"type": "boolean"}
            },
            "required": ["teacherId", "groupId", "classroomId", "dayOfWeek", "startTime", "endTime"]
        },
        "SettingsRequest": {
            "type": "object",
            "properties": {
                "schoolName": {"type": "string"},
                "workdayStart": {"type": "string"},
                "workdayEnd": {"type": "string"},
                "lessonDuration": {"type": "integer"},
                "workingDays": {"type": "integer"},
                "darkMode": {"type": "boolean"}
            }
        },
        "PreviewRequest": {
            "type": "object",
            "properties": {
                "rows": {"type": "array", "items": {"type": "array", "items": {"type": "string"}}},
                "mapping": {"$ref": "#/definitions/ColumnMapping"}
            }
        },
        "ColumnMapping": {
            "type": "object",
            "required": ["teacher", "group", "classroom", "day", "startTime", "endTime"],
            "properties": {
                "teacher": {"type": "integer"},
                "group": {"type": "integer"},
                "classroom": {"type": "integer"},
                "day": {"type": "integer"},
                "startTime": {"type": "integer"},
                "endTime": {"type": "integer"},
                "note": {"type": "integer"}
            }
        },
        "PreviewBatch": {
            "type": "object",
            "properties": {
                "teachers": {"type": "array", "items": {"type": "object"}},
                "groups": {"type": "array", "items": {"type": "object"}},
                "classrooms": {"type": "array", "items": {"type": "object"}},
                "lessons": {"type": "array", "items": {"type": "object"}},
                "errors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
