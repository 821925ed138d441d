package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"chatitude/internal"
	"chatitude/repositories"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// Companion tool to inspect the transcript store without starting the server.
func main() {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatal("Error while reading configuration: ", err)
	}

	dbPath := flag.String("db", config.DatabaseFilepath, "Path to the transcript JSON file")
	limit := flag.Int("limit", 0, "Only show the last N messages (0 = all)")
	flag.Parse()

	repository := repositories.NewTranscriptRepository(*dbPath, logs.GetLoggerFromString("ERROR"))

	messages, err := repository.Messages()
	if err != nil {
		log.Fatal("Error while reading messages: ", err)
	}
	knowledge, err := repository.Knowledge()
	if err != nil {
		log.Fatal("Error while reading knowledge: ", err)
	}

	if *limit > 0 && len(messages) > *limit {
		messages = messages[len(messages)-*limit:]
	}

	color.New(color.BgBlack, color.FgGreen).Printf("====== Messages (%d) ======\n", len(messages))
	table := newTable()
	table.SetHeader([]string{"Time", "Sender", "Name", "Type", "Text"})
	for _, m := range messages {
		text := m.Text
		if len(text) > 80 {
			text = text[:80] + "…"
		}
		table.Append([]string{
			m.CreatedAt.Format("2006-01-02 15:04:05"),
			string(m.Sender),
			m.SenderName,
			string(m.Type),
			text,
		})
	}
	table.Render()

	fmt.Println()
	color.New(color.BgBlack, color.FgCyan).Printf("====== Knowledge (%d) ======\n", len(knowledge))
	table = newTable()
	table.SetHeader([]string{"Question", "Answer"})
	for _, qa := range knowledge {
		table.Append([]string{qa.Question, qa.Answer})
	}
	table.Render()
}

func newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
