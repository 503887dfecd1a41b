// @title           HomePro API
// @version         1.0
// @description     API маркетплейса домашних услуг: клиенты, провайдеры, лиды, отзывы.
// @host            localhost:8080
// @BasePath        /

package main

import "homepro_backend/internal/app"

func main() {
	app.Run()
}
