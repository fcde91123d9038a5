package status

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyde/connector-install/internal/connector"
	"github.com/fyde/connector-install/internal/logging"
	"github.com/fyde/connector-install/internal/platform"
	"github.com/fyde/connector-install/internal/systemd"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the connector installation status",
		Long: `Report the state of the Fyde Connector installation:
- Detected distribution family
- Connector binary presence and version
- Systemd service state
- Environment override presence`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	logger := logging.SetupLogger("error") // keep human output on stdout clean

	fmt.Println("🔍 Fyde Connector Status")
	fmt.Println(strings.Repeat("=", 40))

	if info, err := platform.Detect(logger); err == nil {
		fmt.Printf("Platform:  %s (%s family)\n", info.PrettyName, info.Family)
	} else {
		fmt.Printf("Platform:  ❌ %v\n", err)
	}

	binary, err := connector.Find()
	if err != nil {
		fmt.Println("Connector: ❌ not installed")
	} else {
		line := fmt.Sprintf("Connector: ✅ %s", binary)
		if version, err := connector.InstalledVersion(binary); err == nil {
			line += " (v" + version + ")"
		}
		fmt.Println(line)
	}

	if systemd.IsActive(connector.ServiceName) {
		fmt.Println("Service:   ✅ active")
	} else {
		fmt.Println("Service:   ⚠️  not active")
	}

	if _, err := os.Stat(systemd.DefaultOverridePath); err == nil {
		fmt.Printf("Override:  ✅ %s\n", systemd.DefaultOverridePath)
	} else {
		fmt.Println("Override:  ⚠️  not written")
	}

	return nil
}
