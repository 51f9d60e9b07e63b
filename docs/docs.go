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
        "/ping": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/payments/webhook": {
            "post": {
                "tags": ["payments"],
                "summary": "Payment provider notification",
                "parameters": [
                    {"type": "string", "name": "topic", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "id", "in": "query"},
                    {"type": "string", "name": "data.id", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.WebhookResponse"}}}
            }
        },
        "/payments/{payment_id}/backfill": {
            "post": {
                "tags": ["payments"],
                "summary": "Fetch a payment from the provider and store it",
                "parameters": [{"type": "string", "name": "payment_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.BackfillResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/entities/{kind}": {
            "get": {
                "tags": ["entities"],
                "summary": "Paginated entities enriched with payment status",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.EntityPageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/entities/{kind}/{entity_id}/status": {
            "get": {
                "tags": ["entities"],
                "summary": "Derived payment status of one entity",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "entity_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.EntityStatusResponse"}}}
            }
        },
        "/entities/{kind}/{entity_id}/payments": {
            "get": {
                "tags": ["entities"],
                "summary": "Ledger rows of one entity, newest first",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "entity_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.PaymentRecordResponse"}}}}
            }
        },
        "/entities/{kind}/{entity_id}/payment-status": {
            "patch": {
                "tags": ["entities"],
                "summary": "Overwrite the payment-status display column of a record",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "entity_id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.PaymentStatusUpdateRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/entities/{kind}/{entity_id}/payment-link": {
            "post": {
                "tags": ["dispatch"],
                "summary": "Create a checkout link and email it",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "entity_id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "schema": {"$ref": "#/definitions/request.DispatchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.PaymentLinkResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/entities/{kind}/{entity_id}/credential": {
            "post": {
                "tags": ["dispatch"],
                "summary": "Email the hunting credential of a paid entity",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "entity_id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "schema": {"$ref": "#/definitions/request.DispatchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.DispatchResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/entities/{kind}/{entity_id}/document": {
            "post": {
                "tags": ["dispatch"],
                "summary": "Email the stored PDF of an entity",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "entity_id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "schema": {"$ref": "#/definitions/request.DispatchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.DispatchResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/inspection/inscriptions": {
            "get": {
                "tags": ["inspection"],
                "summary": "Find inscriptions by CUIT",
                "parameters": [{"type": "string", "name": "cuit", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.InspectionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/inspection/permits": {
            "get": {
                "tags": ["inspection"],
                "summary": "Find permits by id or DNI",
                "parameters": [
                    {"type": "string", "name": "id", "in": "query"},
                    {"type": "string", "name": "dni", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.InspectionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "details": {"type": "string"}}
        },
        "request.PaymentStatusUpdateRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string"}}
        },
        "request.DispatchRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "category": {"type": "string"},
                "display_name": {"type": "string"},
                "nombre_establecimiento": {"type": "string"}
            }
        },
        "response.WebhookResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "outcome": {"type": "string"}}
        },
        "response.PaymentRecordResponse": {
            "type": "object",
            "properties": {
                "payment_id": {"type": "string"},
                "entity_id": {"type": "string"},
                "kind": {"type": "string"},
                "status": {"type": "string"},
                "status_detail": {"type": "string"},
                "amount": {"type": "string"},
                "payer_email": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "response.BackfillResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "payment": {"$ref": "#/definitions/response.PaymentRecordResponse"}}
        },
        "response.EntityPageResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "object"}},
                "total_records": {"type": "integer"},
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "response.EntityStatusResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "entity_id": {"type": "string"},
                "payment_status": {"type": "string"},
                "payment_id": {"type": "string"},
                "payment_date": {"type": "string"}
            }
        },
        "response.PaymentLinkResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "entity_id": {"type": "string"},
                "recipient": {"type": "string"},
                "checkout_url": {"type": "string"},
                "preference_id": {"type": "string"},
                "amount": {"type": "string"}
            }
        },
        "response.DispatchResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "entity_id": {"type": "string"},
                "action": {"type": "string"},
                "recipient": {"type": "string"}
            }
        },
        "response.InspectionResponse": {
            "type": "object",
            "properties": {
                "found": {"type": "boolean"},
                "total": {"type": "integer"},
                "results": {"type": "array", "items": {"type": "object"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Caza Backend API",
	Description:      "Hunting-season registrations, permits and their Mercado Pago payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
