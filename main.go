package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/headlines/internal/di"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.headlines"
	AppName = "Headlines"

	WindowWidth  = 540
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	application, err := di.InitializeApp(myApp, myWindow)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Quit the event loop on interrupt so the scheduler is stopped cleanly
	go func() {
		<-ctx.Done()
		fyne.Do(myApp.Quit)
	}()

	if err := application.Run(ctx); err != nil {
		log.Fatalf("application runtime error: %v", err)
	}
}
