package cli

import (
	"fmt"
	"io"

	"github.com/heatpump-estimator/hp-estimator-go/pkg/console"
	"github.com/heatpump-estimator/hp-estimator-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(w io.Writer) {
	banner := `
     _   _ ____    _____     _   _                 _
    | | | |  _ \  | ____|___| |_(_)_ __ ___   __ _| |_ ___  _ __
    | |_| | |_) | |  _| / __| __| | '_ ' _ \ / _' | __/ _ \| '__|
    |  _  |  __/  | |___\__ \ |_| | | | | | | (_| | || (_) | |
    |_| |_|_|     |_____|___/\__|_|_| |_| |_|\__,_|\__\___/|_|
        `
	fmt.Fprintln(w, console.BoldRed(banner))
	fmt.Fprintln(w, console.BrightCyan(fmt.Sprintf("Heat pump running cost estimator (v%s)", version.FormatVersion())))
}
