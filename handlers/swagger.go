package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the note service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>quillbox — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the note and admin endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "quillbox", "version": "v0.1.0" },
  "components": { "securitySchemes": { "bearerAuth": { "type": "http", "scheme": "bearer", "bearerFormat": "JWT" } } },
  "paths": {
    "/api/admin/login": {
      "post": {
        "summary": "Authenticate the administrator",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["username","password"],"properties":{"username":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "token and admin summary" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/api/admin/profile": {
      "get": { "summary": "Administrator profile", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "admin record without the password hash" } } }
    },
    "/api/notes": {
      "get": { "summary": "List active notes", "security": [{"bearerAuth": []}], "parameters": [{"name":"category","in":"query","schema":{"type":"string"}},{"name":"search","in":"query","schema":{"type":"string"}},{"name":"sort","in":"query","schema":{"type":"string","enum":["createdAt","updated","title"]}}], "responses": { "200": { "description": "active notes" } } },
      "post": { "summary": "Create a note", "security": [{"bearerAuth": []}], "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["title","content"],"properties":{"title":{"type":"string"},"content":{"type":"string"},"color":{"type":"string"},"category":{"type":"string"},"tags":{"type":"array","items":{"type":"string"}}}}}}}, "responses": { "201": { "description": "created note" }, "400": { "description": "missing title or content" } } }
    },
    "/api/notes/trash/all": {
      "get": { "summary": "List trashed notes", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "trashed notes, most recently deleted first" } } }
    },
    "/api/notes/trash/empty": {
      "delete": { "summary": "Permanently remove every trashed note", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "count of removed notes" } } }
    },
    "/api/notes/{id}": {
      "get": { "summary": "Fetch one note", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "note" }, "404": { "description": "not found" } } },
      "put": { "summary": "Partially update a note", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "updated note" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Move a note to the trash", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "confirmation" }, "404": { "description": "not found" } } }
    },
    "/api/notes/{id}/restore": {
      "patch": { "summary": "Restore a note from the trash", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "restored note" }, "404": { "description": "not found" } } }
    },
    "/api/notes/{id}/permanent": {
      "delete": { "summary": "Permanently delete a note", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "confirmation" }, "404": { "description": "not found" } } }
    },
    "/api/notes/{id}/pin": {
      "patch": { "summary": "Toggle the pinned flag", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "updated note" }, "404": { "description": "not found" } } }
    },
    "/api/health": {
      "get": { "summary": "Liveness probe", "responses": { "200": { "description": "server is running" } } }
    }
  }
}`
