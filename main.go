package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/n5bot/internal/bot"
	"github.com/example/n5bot/internal/content"
	"github.com/example/n5bot/internal/exam"
	"github.com/example/n5bot/internal/excel"
	"github.com/example/n5bot/internal/scheduler"
	"github.com/example/n5bot/internal/srs"
	"github.com/example/n5bot/internal/storage"
)

func main() {
	importFile := flag.String("import", "", "import a vocabulary spreadsheet (.xlsx or .csv) and exit")
	flag.Parse()

	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	library := content.NewLibrary(dataDir)

	if *importFile != "" {
		result, err := excel.ImportVocabulary(library, excel.DefaultImportConfig(*importFile))
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		log.Printf("Import finished: %d processed, %d created, %d updated, %d skipped",
			result.TotalProcessed, result.Created, result.Updated, result.Skipped)
		for _, e := range result.Errors {
			log.Printf("  %s", e)
		}
		return
	}

	// Default persistence is the JSON documents next to the content;
	// setting DB_TYPE switches to the SQL backend.
	var progressStore storage.ProgressStore
	var sessionStore storage.SessionStore
	if os.Getenv("DB_TYPE") != "" {
		db, err := storage.OpenDB(dataDir)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		progressStore = db.Progress()
		sessionStore = db.Sessions()
	} else {
		progressStore = storage.NewFileProgressStore(filepath.Join(dataDir, "progress.json"))
		sessionStore = storage.NewFileSessionStore(filepath.Join(dataDir, "sessions.json"))
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := exam.New(library, rnd)
	tracker := srs.New(progressStore)

	b, err := bot.New(engine, library, tracker, progressStore, sessionStore,
		filepath.Join(dataDir, "settings.json"), rnd)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	sched := scheduler.New(b, progressStore)
	sched.Start()
	defer sched.Stop()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		b.Stop()
	}()

	log.Println("Bot started. Press Ctrl+C to stop.")
	if err := b.Start(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
