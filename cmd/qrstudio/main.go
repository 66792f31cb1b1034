// Command qrstudio opens the QR code generator window.
package main

import (
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/Mictilt/qrstudio/ui"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)

	a := app.NewWithID("com.github.mictilt.qrstudio")
	ui.New(a, logrus.NewEntry(log)).ShowAndRun()
}
