package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, importHandler *ImportHandler, resolver ActorResolver) {
	group := server.Group("/api/v1/leads/import", RequireAdmin(resolver))
	group.POST("/preview", importHandler.PreviewLeadImport)
	group.POST("", importHandler.CommitLeadImport)
}
