package main

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mudler/xlog"

	"github.com/mudler/LocalNotes/core/agent"
	"github.com/mudler/LocalNotes/core/backup"
	"github.com/mudler/LocalNotes/core/notes"
	"github.com/mudler/LocalNotes/pkg/llm"
	"github.com/mudler/LocalNotes/services/tools"
	"github.com/mudler/LocalNotes/webui"
)

var model = os.Getenv("LOCALNOTES_MODEL")
var apiURL = os.Getenv("LOCALNOTES_LLM_API_URL")
var apiKey = os.Getenv("LOCALNOTES_LLM_API_KEY")
var timeout = os.Getenv("LOCALNOTES_TIMEOUT")
var stateDir = os.Getenv("LOCALNOTES_STATE_DIR")
var listenAddr = os.Getenv("LOCALNOTES_LISTEN_ADDR")
var backupSchedule = os.Getenv("LOCALNOTES_BACKUP_SCHEDULE")
var backupKeep = os.Getenv("LOCALNOTES_BACKUP_KEEP")

func init() {
	if timeout == "" {
		timeout = "5m"
	}
	if listenAddr == "" {
		listenAddr = ":3000"
	}
	if stateDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			panic(err)
		}

		stateDir = filepath.Join(cwd, "state")
	}
}

func main() {
	// make sure state dir exists
	os.MkdirAll(stateDir, 0755)

	store, err := notes.NewStore(filepath.Join(stateDir, "notes.json"))
	if err != nil {
		panic(err)
	}
	service := notes.NewService(store)
	toolbox := tools.New(service)

	// Note storage and the HTTP API work without a model; only the assistant
	// endpoint refuses requests until one is configured.
	agentOpts := []agent.Option{
		agent.WithModel(model),
		agent.WithToolbox(toolbox),
	}
	if model != "" && apiURL != "" {
		agentOpts = append(agentOpts, agent.WithClient(llm.NewClient(apiKey, apiURL, timeout)))
	} else {
		xlog.Warn("LOCALNOTES_MODEL or LOCALNOTES_LLM_API_URL not set, the assistant endpoint will refuse requests")
	}
	notesAgent := agent.New(agentOpts...)

	if backupSchedule != "" {
		keep := 10
		if backupKeep != "" {
			if n, err := strconv.Atoi(backupKeep); err == nil {
				keep = n
			}
		}
		snapshotter, err := backup.New(store.Path(), filepath.Join(stateDir, "backups"), backupSchedule, keep)
		if err != nil {
			panic(err)
		}
		snapshotter.Start()
		defer snapshotter.Stop()
	}

	// Create the application
	app := webui.NewApp(
		webui.WithService(service),
		webui.WithAgent(notesAgent),
	)

	xlog.Info("LocalNotes ready", "state", stateDir, "addr", listenAddr)

	// Start the web server
	log.Fatal(app.Listen(listenAddr))
}
