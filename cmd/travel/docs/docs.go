// Package docs holds the swagger document served under /swagger.
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
		"/v1/airports": {
			"get": {
				"tags": [
					"airports"
				],
				"summary": "Search airports",
				"produces": [
					"application/json"
				],
				"description": "Case-insensitive substring match over code, city, country and name (max 8)",
				"parameters": [
					{
						"type": "string",
						"description": "Search text",
						"name": "q",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/airport.Airport"
							}
						}
					}
				}
			}
		},
		"/v1/airports/{code}": {
			"get": {
				"tags": [
					"airports"
				],
				"summary": "Get airport by IATA code",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "IATA code",
						"name": "code",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/airport.Airport"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/v1/flights/search": {
			"post": {
				"tags": [
					"flights"
				],
				"summary": "Search flights",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Search criteria",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/flight.SearchRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/flight.FlightSearchResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/v1/flights/filter": {
			"post": {
				"tags": [
					"flights"
				],
				"summary": "Filter and sort flights",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Search criteria with filters",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/flight.FilterRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/flight.FlightSearchResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/v1/flights/cache": {
			"delete": {
				"tags": [
					"flights"
				],
				"summary": "Invalidate cached flight candidates",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Route and date",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/flight.SearchRequest"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/v1/trips/cost": {
			"post": {
				"tags": [
					"trips"
				],
				"summary": "Price a trip plan",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"description": "Flights, ground transport, food and hotels for every leg plus trip totals",
				"parameters": [
					{
						"description": "Trip plan",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/trip.Plan"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/trip.Summary"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/v1/trips/compare": {
			"post": {
				"tags": [
					"trips"
				],
				"summary": "Compare trip plans",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Plans",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/trip.CompareRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/trip.CompareResult"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/v1/trips/schedule": {
			"post": {
				"tags": [
					"trips"
				],
				"summary": "Day-by-day schedule for a priced trip",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Trip summary",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/trip.Summary"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/trip.DaySchedule"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/v1/trips/reprice": {
			"post": {
				"tags": [
					"trips"
				],
				"summary": "Re-price one destination under a different selection",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Destination and selection",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/trip.RepriceRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/trip.RepriceResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/v1/saved-trips": {
			"get": {
				"tags": [
					"saved-trips"
				],
				"summary": "List saved trips",
				"produces": [
					"application/json"
				],
				"description": "Newest first",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/savedtrip.SavedTrip"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"saved-trips"
				],
				"summary": "Save a priced trip",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Trip cost summary",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/trip.Summary"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/savedtrip.SavedTrip"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"delete": {
				"tags": [
					"saved-trips"
				],
				"summary": "Delete every saved trip",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/v1/saved-trips/{id}": {
			"delete": {
				"tags": [
					"saved-trips"
				],
				"summary": "Delete one saved trip",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Saved trip id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"airport.Airport": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"country": {
					"type": "string"
				}
			},
			"required": [
				"city",
				"code"
			]
		},
		"flight.PriceTrend": {
			"type": "object",
			"properties": {
				"earlier_price": {
					"type": "number"
				},
				"later_price": {
					"type": "number"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"flight.FlightOption": {
			"type": "object",
			"properties": {
				"airline": {
					"type": "string"
				},
				"airline_logo": {
					"type": "string"
				},
				"flight_number": {
					"type": "string"
				},
				"departure_time": {
					"type": "string"
				},
				"arrival_time": {
					"type": "string"
				},
				"duration": {
					"type": "string"
				},
				"duration_minutes": {
					"type": "integer"
				},
				"stops": {
					"type": "integer"
				},
				"stop_cities": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"price": {
					"type": "number"
				},
				"currency": {
					"type": "string"
				},
				"credibility_score": {
					"type": "integer"
				},
				"price_trend": {
					"$ref": "#/definitions/flight.PriceTrend"
				},
				"score": {
					"type": "number"
				}
			}
		},
		"flight.SearchRequest": {
			"type": "object",
			"properties": {
				"origin": {
					"type": "string"
				},
				"destination": {
					"type": "string"
				},
				"departure_date": {
					"type": "string"
				},
				"priorities": {
					"type": "array",
					"items": {
						"type": "string",
						"enum": [
							"duration",
							"rating",
							"stops",
							"price"
						]
					}
				}
			},
			"required": [
				"departure_date",
				"destination",
				"origin"
			]
		},
		"flight.FilterRequest": {
			"type": "object",
			"properties": {
				"origin": {
					"type": "string"
				},
				"destination": {
					"type": "string"
				},
				"departure_date": {
					"type": "string"
				},
				"priorities": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"filters": {
					"type": "object"
				},
				"sort": {
					"type": "object"
				}
			},
			"required": [
				"departure_date",
				"destination",
				"origin"
			]
		},
		"flight.Metadata": {
			"type": "object",
			"properties": {
				"total_results": {
					"type": "integer"
				},
				"search_time_ms": {
					"type": "integer"
				},
				"cache_key": {
					"type": "string"
				},
				"cache_hit": {
					"type": "boolean"
				}
			}
		},
		"flight.FlightSearchResponse": {
			"type": "object",
			"properties": {
				"search_criteria": {
					"type": "object"
				},
				"metadata": {
					"$ref": "#/definitions/flight.Metadata"
				},
				"flights": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/flight.FlightOption"
					}
				}
			}
		},
		"trip.Leg": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"from": {
					"$ref": "#/definitions/airport.Airport"
				},
				"to": {
					"$ref": "#/definitions/airport.Airport"
				},
				"departure_date": {
					"type": "string"
				},
				"is_return": {
					"type": "boolean"
				}
			}
		},
		"trip.Plan": {
			"type": "object",
			"properties": {
				"legs": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/trip.Leg"
					}
				},
				"meals_per_day": {
					"type": "integer",
					"enum": [
						1,
						2,
						3
					]
				},
				"hotel_stars": {
					"type": "integer",
					"enum": [
						3,
						4,
						5
					]
				},
				"flight_priorities": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"meal_tiers": {
					"type": "array",
					"items": {
						"type": "string",
						"enum": [
							"budget",
							"mid",
							"fine"
						]
					}
				}
			}
		},
		"trip.DestinationCost": {
			"type": "object",
			"properties": {
				"leg_id": {
					"type": "string"
				},
				"destination": {
					"$ref": "#/definitions/airport.Airport"
				},
				"arrival_date": {
					"type": "string"
				},
				"departure_date": {
					"type": "string"
				},
				"total_nights": {
					"type": "integer"
				},
				"total_days": {
					"type": "integer"
				},
				"flights": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/flight.FlightOption"
					}
				},
				"selected_flight": {
					"$ref": "#/definitions/flight.FlightOption"
				},
				"transport": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"food": {
					"type": "object"
				},
				"hotels": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"selected_hotel_index": {
					"type": "integer"
				},
				"transport_total": {
					"type": "number"
				},
				"subtotal": {
					"type": "number"
				},
				"timezone": {
					"type": "string"
				},
				"timezone_offset": {
					"type": "integer"
				},
				"home_timezone_offset": {
					"type": "integer"
				},
				"timezone_difference": {
					"type": "string"
				},
				"local_currency": {
					"type": "string"
				},
				"local_currency_symbol": {
					"type": "string"
				},
				"exchange_rate_to_usd": {
					"type": "number"
				},
				"airport_to_hotel_minutes": {
					"type": "integer"
				},
				"is_return": {
					"type": "boolean"
				}
			}
		},
		"trip.LocalCurrencyTotal": {
			"type": "object",
			"properties": {
				"currency": {
					"type": "string"
				},
				"amount": {
					"type": "number"
				},
				"destination": {
					"type": "string"
				}
			}
		},
		"trip.Summary": {
			"type": "object",
			"properties": {
				"destinations": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/trip.DestinationCost"
					}
				},
				"total_flight_cost": {
					"type": "number"
				},
				"total_transport_cost": {
					"type": "number"
				},
				"total_food_cost": {
					"type": "number"
				},
				"total_hotel_cost": {
					"type": "number"
				},
				"grand_total": {
					"type": "number"
				},
				"currency": {
					"type": "string"
				},
				"local_currency_totals": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/trip.LocalCurrencyTotal"
					}
				}
			}
		},
		"trip.CompareRequest": {
			"type": "object",
			"properties": {
				"plans": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/trip.Plan"
					}
				}
			}
		},
		"trip.CompareResult": {
			"type": "object",
			"properties": {
				"summaries": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/trip.Summary"
					}
				},
				"cheapest_index": {
					"type": "integer"
				}
			}
		},
		"trip.ScheduleItem": {
			"type": "object",
			"properties": {
				"local_time": {
					"type": "string"
				},
				"home_time": {
					"type": "string"
				},
				"activity": {
					"type": "string"
				},
				"icon": {
					"type": "string"
				}
			}
		},
		"trip.DaySchedule": {
			"type": "object",
			"properties": {
				"day_number": {
					"type": "integer"
				},
				"span_days": {
					"type": "integer"
				},
				"label": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"destination": {
					"type": "string"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/trip.ScheduleItem"
					}
				}
			}
		},
		"trip.Selection": {
			"type": "object",
			"properties": {
				"flight_index": {
					"type": "integer"
				},
				"hotel_index": {
					"type": "integer"
				},
				"meal_tiers": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"transport_indices": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				}
			}
		},
		"trip.RepriceRequest": {
			"type": "object",
			"properties": {
				"destination": {
					"$ref": "#/definitions/trip.DestinationCost"
				},
				"selection": {
					"$ref": "#/definitions/trip.Selection"
				}
			}
		},
		"trip.RepriceResponse": {
			"type": "object",
			"properties": {
				"flight": {
					"type": "number"
				},
				"transport": {
					"type": "number"
				},
				"food": {
					"type": "number"
				},
				"hotel": {
					"type": "number"
				},
				"subtotal": {
					"type": "number"
				},
				"local_currency": {
					"type": "string"
				},
				"local_amount": {
					"type": "number"
				}
			}
		},
		"savedtrip.SavedTrip": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"destinations": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"total_cost": {
					"type": "number"
				},
				"currency": {
					"type": "string"
				},
				"summary": {
					"$ref": "#/definitions/trip.Summary"
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
	Schemes:		  []string{"http"},
	Title:			"Trip Cost API",
	Description:	  "Prices multi-city trips: synthetic flights, ground transport, food and hotels.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
