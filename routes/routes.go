package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartparker-api/cache"
	"smartparker-api/controllers"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, store cache.Store) {
	// Controllers
	motoController := controllers.NewMotoController(db, store)
	patioController := controllers.NewPatioController(db, store)
	setorController := controllers.NewSetorController(db, store)
	usuarioController := controllers.NewUsuarioController(db, store)
	localizacaoController := controllers.NewLocalizacaoController(db, store)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	motos := r.Group("/motos")
	{
		motos.GET("", motoController.Index)
		motos.GET("/:id", motoController.Get)
		motos.POST("", motoController.Create)
		motos.PUT("/:id", motoController.Update)
		motos.DELETE("/:id", motoController.Delete)
	}

	patios := r.Group("/patios")
	{
		patios.GET("", patioController.Index)
		patios.GET("/:id", patioController.Get)
		patios.POST("", patioController.Create)
		patios.PUT("/:id", patioController.Update)
		patios.DELETE("/:id", patioController.Delete)
	}

	setores := r.Group("/setores")
	{
		setores.GET("", setorController.Index)
		setores.GET("/:id", setorController.Get)
		setores.POST("", setorController.Create)
		setores.PUT("/:id", setorController.Update)
		setores.DELETE("/:id", setorController.Delete)
	}

	usuarios := r.Group("/usuarios")
	{
		usuarios.GET("", usuarioController.Index)
		usuarios.GET("/:id", usuarioController.Get)
		usuarios.POST("", usuarioController.Create)
		usuarios.PUT("/:id", usuarioController.Update)
		usuarios.DELETE("/:id", usuarioController.Delete)
	}

	localizacoes := r.Group("/localizacoes")
	{
		localizacoes.GET("", localizacaoController.Index)
		localizacoes.GET("/:id", localizacaoController.Get)
		localizacoes.GET("/detalhes/:motoId", localizacaoController.Detalhes)
		localizacoes.POST("", localizacaoController.Create)
		localizacoes.PUT("/:id", localizacaoController.Update)
		localizacoes.DELETE("/:id", localizacaoController.Delete)
	}
}
