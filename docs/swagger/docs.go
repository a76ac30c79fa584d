// Package swagger Freight Estimator API.
//
// Сгенерировано swag init по аннотациям хендлеров и перенесено вручную при изменении API.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@freight-estimator.local"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/v1/quotes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Рассчитать стоимость перевозки",
                "parameters": [
                    {
                        "description": "Параметры расчёта",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.QuoteRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.QuoteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/quotes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Получить выданную котировку",
                "parameters": [
                    {"type": "string", "description": "Quote ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuoteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/cities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["routes"],
                "summary": "Список городов тарифа",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CitiesResponse"}}
                }
            }
        },
        "/api/v1/routes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["routes"],
                "summary": "Список маршрутов тарифа",
                "parameters": [
                    {"type": "string", "description": "Город отправления", "name": "origin", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RoutesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/tariff": {
            "get": {
                "produces": ["application/json"],
                "tags": ["routes"],
                "summary": "Действующий тариф",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TariffResponse"}}
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Статистика журнала котировок",
                "parameters": [
                    {"type": "boolean", "description": "Пересчитать в обход кеша", "name": "refresh", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.QuoteStatistics"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.QuoteRequest": {
            "type": "object",
            "properties": {
                "origin": {"type": "string", "example": "Москва"},
                "destination": {"type": "string", "example": "Казань"},
                "volume": {"type": "string", "example": "2,5"},
                "vehicle": {"type": "string", "example": "gazelle"}
            }
        },
        "dto.QuoteResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "origin": {"type": "string"},
                "destination": {"type": "string"},
                "vehicle": {"type": "string"},
                "vehicle_title": {"type": "string"},
                "volume_m3": {"type": "number"},
                "distance_km": {"type": "integer"},
                "total_price": {"type": "integer"},
                "total_price_formatted": {"type": "string"},
                "breakdown": {"type": "object"},
                "summary": {"type": "string"},
                "disclaimer": {"type": "string"},
                "issued_at": {"type": "string"}
            }
        },
        "dto.CitiesResponse": {
            "type": "object",
            "properties": {
                "cities": {"type": "array", "items": {"type": "object"}},
                "total": {"type": "integer"}
            }
        },
        "dto.RoutesResponse": {
            "type": "object",
            "properties": {
                "routes": {"type": "array", "items": {"type": "object"}},
                "total": {"type": "integer"}
            }
        },
        "dto.TariffResponse": {
            "type": "object",
            "properties": {
                "per_cubic_meter_rate": {"type": "integer"},
                "vehicles": {"type": "array", "items": {"type": "object"}},
                "cities": {"type": "integer"},
                "routes": {"type": "integer"},
                "symmetric": {"type": "boolean"}
            }
        },
        "domain.QuoteStatistics": {
            "type": "object",
            "properties": {
                "total_quotes": {"type": "integer"},
                "by_vehicle": {"type": "object"},
                "top_routes": {"type": "array", "items": {"type": "object"}},
                "average_total_price": {"type": "number"},
                "total_volume_m3": {"type": "number"},
                "last_updated": {"type": "string"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Freight Estimator API",
	Description:      "Сервис расчёта стоимости грузоперевозок между городами.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
