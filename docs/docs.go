// Package docs регистрирует OpenAPI-документ REST API для swag/http-swagger.
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
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Ключи разделов меню",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/sessions": {
            "post": {
                "description": "Создаёт сессию со стартовым меню и пустой корзиной",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Новая сессия",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.SessionResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Состояние сессии",
                "parameters": [{"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SessionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["sessions"],
                "summary": "Завершение сессии",
                "parameters": [{"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/summary": {
            "get": {
                "description": "Сумма и число позиций в корзине, средняя цена активного раздела",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Итоги",
                "parameters": [{"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SummaryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/menu": {
            "get": {
                "description": "Делает раздел активным и возвращает его позиции. Неизвестный раздел даёт пустой список.",
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Выбор раздела меню",
                "parameters": [
                    {"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Раздел; по умолчанию активный", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CategoryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Добавляет позицию в раздел. Цена > 0, не больше двух знаков после точки; интенсивность считается по цене.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Новая позиция меню",
                "parameters": [
                    {"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true},
                    {"description": "Форма позиции", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.AddMenuItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.MenuItemResponse"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/menu/{category}/{index}": {
            "delete": {
                "description": "Удаляет позицию по индексу в разделе. Индекс вне диапазона ничего не меняет.",
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Удаление позиции меню",
                "parameters": [
                    {"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Раздел", "name": "category", "in": "path", "required": true},
                    {"type": "integer", "description": "Индекс в разделе", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CategoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/cart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Корзина",
                "parameters": [{"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Очистить корзину",
                "parameters": [{"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/cart/items": {
            "post": {
                "description": "Повторное добавление увеличивает количество на 1",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Добавить в корзину",
                "parameters": [
                    {"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true},
                    {"description": "ID позиции меню", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.AddToCartRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/cart/items/{itemID}": {
            "put": {
                "description": "Количество <= 0 удаляет строку; отсутствующая позиция ничего не меняет",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Изменить количество",
                "parameters": [
                    {"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "ID позиции", "name": "itemID", "in": "path", "required": true},
                    {"description": "Новое количество", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.SetQuantityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Удалить строку корзины",
                "parameters": [
                    {"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "ID позиции", "name": "itemID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/checkout": {
            "post": {
                "description": "Считает итог. Корзина не меняется до подтверждения.",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Оформление заказа",
                "parameters": [{"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CheckoutResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Корзина пуста", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/checkout/confirm": {
            "post": {
                "description": "Публикует событие заказа и очищает корзину. Если expected_total не совпадает с текущим итогом, возвращает 409.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Подтверждение заказа",
                "parameters": [
                    {"type": "string", "description": "ID сессии", "name": "id", "in": "path", "required": true},
                    {"description": "Итог, показанный при оформлении", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/http.ConfirmOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.ConfirmOrderResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Корзина изменилась", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Корзина пуста", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "503": {"description": "Брокер недоступен", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.AddMenuItemRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "ingredients": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "string"}
            }
        },
        "http.AddToCartRequest": {
            "type": "object",
            "properties": {"item_id": {"type": "integer"}}
        },
        "http.SetQuantityRequest": {
            "type": "object",
            "properties": {"quantity": {"type": "integer"}}
        },
        "http.ConfirmOrderRequest": {
            "type": "object",
            "properties": {"expected_total": {"type": "string"}}
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "integer"}, "message": {"type": "string"}}
        },
        "http.MenuItemResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "image": {"type": "string"},
                "ingredients": {"type": "array", "items": {"type": "string"}},
                "intensity": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "string"}
            }
        },
        "http.CartLineResponse": {
            "type": "object",
            "properties": {
                "item": {"$ref": "#/definitions/http.MenuItemResponse"},
                "quantity": {"type": "integer"},
                "subtotal": {"type": "string"}
            }
        },
        "http.CartResponse": {
            "type": "object",
            "properties": {
                "item_count": {"type": "integer"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/http.CartLineResponse"}},
                "total_price": {"type": "string"}
            }
        },
        "http.CategoryResponse": {
            "type": "object",
            "properties": {
                "average_price": {"type": "string"},
                "category": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.MenuItemResponse"}}
            }
        },
        "http.SessionResponse": {
            "type": "object",
            "properties": {
                "active_category": {"type": "string"},
                "cart": {"$ref": "#/definitions/http.CartResponse"},
                "categories": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "http.CheckoutResponse": {
            "type": "object",
            "properties": {
                "item_count": {"type": "integer"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/http.CartLineResponse"}},
                "message": {"type": "string"},
                "total": {"type": "string"}
            }
        },
        "http.ConfirmOrderResponse": {
            "type": "object",
            "properties": {
                "cart": {"$ref": "#/definitions/http.CartResponse"},
                "event_id": {"type": "string"},
                "item_count": {"type": "integer"},
                "message": {"type": "string"},
                "total": {"type": "string"}
            }
        },
        "http.SummaryResponse": {
            "type": "object",
            "properties": {
                "active_category": {"type": "string"},
                "average_price": {"type": "string"},
                "item_count": {"type": "integer"},
                "total_price": {"type": "string"}
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
	Title:            "Christoffel's Kitchen API",
	Description:      "Меню, корзина и заказы в рамках клиентской сессии.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
