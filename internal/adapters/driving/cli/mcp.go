package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cleanhub/internal/adapters/driving/mcp"
)

var (
	mcpPort      int
	mcpModelPath string
	mcpCleaning  cleaningFlags
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can clean
text and label it with a trained model.

Tools:
  clean_text   normalise a piece of Ethiopic text
  predict      label texts with the model at --model-path

Resources:
  cleanhub://runs             recent pipeline runs
  cleanhub://runs/{command}   recent runs of one command

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  cleanhub mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  cleanhub mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().StringVar(&mcpModelPath, "model-path", "models/model.gob", "default model for the predict tool")
	mcpCleaning.register(mcpServeCmd)
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if preprocessService == nil {
		return errors.New("preprocess service not configured")
	}

	ports := &mcp.Ports{
		Preprocess: preprocessService,
		Model:      modelService,
		Runs:       runService,
	}
	opts := mcp.Options{
		Cleaning:  mcpCleaning.resolve(cmd),
		ModelPath: mcpModelPath,
	}

	server, err := mcp.NewServer(ports, opts)
	if err != nil {
		return err
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
