//go:build js && wasm

package main

import (
	"context"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/csg33k/palmwatch/internal/adapters/assessapi"
	"github.com/csg33k/palmwatch/internal/adapters/dom"
	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/domain"
	"github.com/csg33k/palmwatch/internal/observability"
	"github.com/csg33k/palmwatch/internal/templates"
)

// profileName is overridden at link time for the risk page:
// -ldflags "-X main.profileName=risk".
var profileName = domain.ProfileDashboard

func main() {
	logger, err := observability.NewLogger("info", "text", os.Stdout)
	if err != nil {
		panic(err)
	}
	slog.SetDefault(logger)

	profile, err := controller.ProfileByName(profileName)
	if err != nil {
		logger.Error("palmwatch", "err", err)
		return
	}
	doc := dom.New()
	el, btn, err := doc.Bind(profile, templates.TriggerID, templates.ResultAreaID, templates.ResultDisplayID)
	if err != nil {
		logger.Error("palmwatch: page is missing elements", "err", err)
		return
	}
	c, err := controller.New(profile, el, assessapi.NewClient(doc.Origin(), logger), controller.WithLogger(logger))
	if err != nil {
		logger.Error("palmwatch", "err", err)
		return
	}

	onClick := js.FuncOf(func(js.Value, []js.Value) any {
		// Event callbacks must not block; fetch needs the event loop.
		go c.Submit(context.Background())
		return nil
	})
	btn.Call("addEventListener", "click", onClick)
	logger.Info("palmwatch ready", "profile", profile.Name)

	select {}
}
