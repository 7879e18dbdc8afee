package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/frequenz-floss/microgrid-client-go/client/microgridclient"
	"github.com/frequenz-floss/microgrid-client-go/cmd/microgridctl/ctlconfig"
	"github.com/frequenz-floss/microgrid-client-go/discovery"
	"github.com/frequenz-floss/microgrid-client-go/history"
	"github.com/frequenz-floss/microgrid-client-go/util/callerrors"
)

const (
	commandComponents  = "components"
	commandConnections = "connections"
	commandSetPower    = "set-power"
	commandEndpoints   = "endpoints"
	commandHistory     = "history"
)

func main() {
	loader := ctlconfig.NewLoader(flag.CommandLine)
	historyLimit := flag.Int("limit", 20, "Maximum rows printed by the history command")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Command-line client for a microgrid gateway.\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  components                 List microgrid components\n")
		fmt.Fprintf(os.Stderr, "  connections                List electrical connections between components\n")
		fmt.Fprintf(os.Stderr, "  set-power <id> <watts>     Set active power for a component\n")
		fmt.Fprintf(os.Stderr, "                             (negative consumes from the grid, positive supplies to it)\n")
		fmt.Fprintf(os.Stderr, "  endpoints                  List gateways registered in etcd\n")
		fmt.Fprintf(os.Stderr, "  history                    List recorded power commands (requires history config)\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --target localhost:57809 components\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --etcd localhost:2379 set-power 7 -1500\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --config microgrid.yaml history\n", os.Args[0])
	}

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: command required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	command := flag.Arg(0)

	settings, err := loader.Load(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.ConnectionTimeout+settings.CallTimeout)
	defer cancel()

	if err := run(ctx, command, flag.Args()[1:], settings, *historyLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string, settings *ctlconfig.Settings, historyLimit int) error {
	switch command {
	case commandComponents:
		return withClient(ctx, settings, runComponents)
	case commandConnections:
		return withClient(ctx, settings, runConnections)
	case commandSetPower:
		if len(args) != 2 {
			return fmt.Errorf("usage: set-power <component-id> <power-watts>")
		}
		componentID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid component id %q: %w", args[0], err)
		}
		powerW, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid power value %q: %w", args[1], err)
		}
		return withClient(ctx, settings, func(ctx context.Context, client *microgridclient.Client) error {
			return runSetPower(ctx, client, settings, componentID, powerW)
		})
	case commandEndpoints:
		return runEndpoints(ctx, settings)
	case commandHistory:
		return runHistory(ctx, settings, historyLimit)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// withClient connects a client (resolving targets through etcd if needed),
// runs fn, and closes the client.
func withClient(ctx context.Context, settings *ctlconfig.Settings, fn func(context.Context, *microgridclient.Client) error) error {
	targets := settings.Targets
	if len(targets) == 0 {
		resolved, err := resolveTargets(ctx, settings)
		if err != nil {
			return err
		}
		targets = resolved
	}

	client, err := microgridclient.NewClient(targets,
		microgridclient.WithCallTimeout(settings.CallTimeout),
		microgridclient.WithConnectionTimeout(settings.ConnectionTimeout),
	)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Connect(ctx); err != nil {
		return err
	}
	return fn(ctx, client)
}

// resolveTargets looks up registered gateway addresses in etcd.
func resolveTargets(ctx context.Context, settings *ctlconfig.Settings) ([]string, error) {
	registry, err := discovery.NewRegistry(settings.EtcdEndpoints, settings.EtcdPrefix)
	if err != nil {
		return nil, err
	}
	if err := registry.Connect(); err != nil {
		return nil, err
	}
	defer registry.Close()

	endpoints, err := registry.Endpoints(ctx)
	if err != nil {
		return nil, err
	}
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("no gateways registered under %s", registry.EndpointsPrefix())
	}

	targets := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		targets = append(targets, ep.Target)
	}
	return targets, nil
}

func runComponents(ctx context.Context, client *microgridclient.Client) error {
	components, err := client.Components(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tMANUFACTURER\tMODEL")
	for _, comp := range components {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", comp.Id, comp.Category, comp.Manufacturer, comp.Model)
	}
	return w.Flush()
}

func runConnections(ctx context.Context, client *microgridclient.Client) error {
	connections, err := client.Connections(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "START\tEND")
	for _, conn := range connections {
		fmt.Fprintf(w, "%d\t%d\n", conn.Start, conn.End)
	}
	return w.Flush()
}

func runSetPower(ctx context.Context, client *microgridclient.Client, settings *ctlconfig.Settings, componentID uint64, powerW int64) error {
	err := client.SetPower(ctx, componentID, powerW)

	// Record the outcome, including failures, when history is configured.
	if settings.History != nil {
		if recErr := recordPowerCommand(ctx, settings.History, client.Target(), componentID, powerW, callerrors.Code(err).String()); recErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record power command: %v\n", recErr)
		}
	}

	if err != nil {
		return err
	}
	fmt.Printf("Set power of component %d to %d W\n", componentID, powerW)
	return nil
}

func recordPowerCommand(ctx context.Context, cfg *history.Config, target string, componentID uint64, powerW int64, status string) error {
	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		return err
	}
	return store.RecordPowerCommand(ctx, target, componentID, powerW, status)
}

func runEndpoints(ctx context.Context, settings *ctlconfig.Settings) error {
	if len(settings.EtcdEndpoints) == 0 {
		return fmt.Errorf("the endpoints command requires --etcd or etcd configuration")
	}

	registry, err := discovery.NewRegistry(settings.EtcdEndpoints, settings.EtcdPrefix)
	if err != nil {
		return err
	}
	if err := registry.Connect(); err != nil {
		return err
	}
	defer registry.Close()

	endpoints, err := registry.Endpoints(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTARGET")
	for _, ep := range endpoints {
		fmt.Fprintf(w, "%s\t%s\n", ep.Name, ep.Target)
	}
	return w.Flush()
}

func runHistory(ctx context.Context, settings *ctlconfig.Settings, limit int) error {
	if settings.History == nil {
		return fmt.Errorf("the history command requires history configuration (use --config)")
	}

	store, err := history.NewStore(settings.History)
	if err != nil {
		return err
	}
	defer store.Close()

	commands, err := store.ListPowerCommands(ctx, limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ISSUED\tTARGET\tCOMPONENT\tPOWER (W)\tSTATUS")
	for _, cmd := range commands {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			cmd.IssuedAt.Format(time.RFC3339), cmd.Target, cmd.ComponentID, cmd.PowerW, cmd.Status)
	}
	return w.Flush()
}
