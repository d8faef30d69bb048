package http

import (
	"github.com/gofiber/fiber/v2"

	producthandler "github.com/layarlegenda59/kasirku/internal/delivery/http/handler/product"
	reporthandler "github.com/layarlegenda59/kasirku/internal/delivery/http/handler/report"
	settingshandler "github.com/layarlegenda59/kasirku/internal/delivery/http/handler/settings"
	trxhandler "github.com/layarlegenda59/kasirku/internal/delivery/http/handler/transaction"
	"github.com/layarlegenda59/kasirku/internal/storage"
	cataloguc "github.com/layarlegenda59/kasirku/internal/usecase/catalog"
	checkoutuc "github.com/layarlegenda59/kasirku/internal/usecase/checkout"
	reportuc "github.com/layarlegenda59/kasirku/internal/usecase/report"
	settingsuc "github.com/layarlegenda59/kasirku/internal/usecase/settings"
)

// RegisterRoutes wires every usecase to the HTTP surface the cashier
// frontend consumes. All routes sit at the root; the deployment proxy
// owns any prefix.
func RegisterRoutes(app *fiber.App, store storage.Store) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	productH := producthandler.New(cataloguc.New(store))
	trxH := trxhandler.New(checkoutuc.New(store), store)
	settingsH := settingshandler.New(settingsuc.New(store))
	reportH := reporthandler.New(reportuc.New(store))

	app.Get("/products", productH.List)
	app.Post("/products", productH.Upsert)
	app.Delete("/products/:id", productH.Delete)

	app.Get("/transactions", trxH.List)
	app.Post("/transactions", trxH.Create)

	app.Get("/settings", settingsH.Get)
	app.Post("/settings", settingsH.Update)
	app.Post("/setup", settingsH.Setup)

	app.Get("/reports/summary", reportH.Summary)
}
