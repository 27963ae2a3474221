package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

type paramTable struct {
	title string
	rows  [][]string
}

var paramDocs = []paramTable{
	{"Apple VAS Parameters", [][]string{
		{"VAS#MerchantID", "String", "Apple Pass Type ID (pass.com.*)"},
		{"VAS#KeySlot", "0-6", "Private key slot (0=auto)"},
		{"VAS#MerchantURL", "URL", "Optional URL for pass"},
	}},
	{"Google Smart Tap Parameters", [][]string{
		{"ST#CollectorID", "String", "Google Collector ID"},
		{"ST#KeySlot", "0-6", "Private key slot (0=auto)"},
		{"ST#KeyVersion", "Integer", "Key version number"},
	}},
	{"NFC Tag Parameters", [][]string{
		{"NFCType2", "0,U,N,B", "Type 2 mode (NTAG, Ultralight)"},
		{"NFCType4", "0,U,N,B,D", "Type 4 mode (DESFire, ISO14443-4)"},
		{"NFCType5", "0,U,N,B", "Type 5 mode (ICODE, ISO15693)"},
		{"IgnoreRandomUID", "0,1", "Filter random UIDs"},
	}},
	{"DESFire Parameters", [][]string{
		{"DESFire#AppID", "Hex (6)", "Application ID"},
		{"DESFire#FileID", "1-255", "File ID to read"},
		{"DESFire#KeySlot", "1-9", "Key slot for auth"},
		{"DESFire#Crypto", "0,1,3", "Crypto mode (0=None, 1=3DES, 3=AES)"},
	}},
	{"Keyboard Parameters", [][]string{
		{"KBLogMode", "0,1", "Enable keyboard emulation"},
		{"KBSource", "Hex", "Data sources bitmask (pass, tag, scanner)"},
		{"KBPrefix", "String", "Prefix before data"},
		{"KBPostfix", "String", "Postfix after data (default: %0A)"},
		{"KBDelayMS", "5-255", "Delay between keystrokes (ms)"},
	}},
	{"LED Parameters", [][]string{
		{"LEDMode", "0-3", "LED mode (0=Off, 1=On, 2=Status, 3=Custom)"},
		{"LEDSelect", "0-3", "LED type (0=External, 1/2=Onboard, 3=Serial)"},
		{"PassLED", "Color,on,off,rep", "LED on successful read"},
		{"PassErrorLED", "Color,on,off,rep", "LED on error"},
	}},
	{"Beeper Parameters", [][]string{
		{"PassBeep", "on,off,rep[,freq]", "Beep on successful read"},
		{"PassErrorBeep", "on,off,rep[,freq]", "Beep on error"},
		{"TagBeep", "on,off,rep[,freq]", "Beep on tag read"},
		{"StartBeep", "on,off,rep[,freq]", "Beep on startup"},
	}},
}

func renderParamTable(t paramTable) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return labelStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Parameter", "Values", "Description").
		Rows(t.rows...)
	return tbl.Render()
}

func newDocsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Show the config.txt parameter reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range paramDocs {
				printSection(t.title)
				fmt.Println(renderParamTable(t))
			}
			return nil
		},
	}
}
