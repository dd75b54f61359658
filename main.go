package main

import (
	"github.com/udistrital/academico_mid/internal/middlewares"
	_ "github.com/udistrital/academico_mid/routers"
	"github.com/udistrital/academico_mid/services"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	cors "github.com/beego/beego/v2/server/web/filter/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logs.Info("sin archivo .env, se usa el entorno del proceso")
	}
	cfg := services.GetConfig()

	middlewares.UseAuth()
	beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(&cors.Options{
		AllowOrigins:     cfg.CORSOrigins, //orígenes permitidos
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Requested-With", "X-Correlation-Id", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))
	if cfg.RunMode == "dev" {
		beego.BConfig.WebConfig.DirectoryIndex = true
		beego.BConfig.WebConfig.StaticDir["/swagger"] = "swagger"
	}
	beego.BConfig.AppName = cfg.AppName
	beego.BConfig.Listen.HTTPPort = cfg.HTTPPort
	beego.Run()
}
