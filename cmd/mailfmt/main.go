package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/freeflowuniverse/heromail/pkg/mail"
	"github.com/freeflowuniverse/heromail/pkg/mailfmt"
)

func main() {
	in := flag.String("in", "-", "Mail JSON document to render (- reads stdin)")
	item := flag.String("item", "all", "Fragment to render: flags, internaldate, address, envelope, bodystructure, headers, message, all")
	docID := flag.String("doc-id", "", "Document ID used in multipart boundaries (defaults to the mail UID)")
	field := flag.String("field", "from", "Address field rendered by -item address: from, to, cc, bcc")
	flag.Parse()

	m, err := readMail(*in)
	if err != nil {
		log.Fatalf("Failed to read mail document: %v", err)
	}

	switch *item {
	case "flags":
		fmt.Println(mailfmt.FlagList(m))
	case "internaldate":
		fmt.Println(mailfmt.InternalDate(m.Date))
	case "address":
		fmt.Println(mailfmt.AddressList(addressField(m, *field).Addresses()))
	case "envelope":
		fmt.Println(mailfmt.Envelope(m))
	case "bodystructure":
		fmt.Println(mailfmt.BodyStructure(m))
	case "headers":
		fmt.Print(mailfmt.Headers(m, *docID))
	case "message":
		fmt.Print(mailfmt.Message(m, *docID))
	case "all":
		fmt.Printf("FLAGS %s\n", mailfmt.FlagList(m))
		fmt.Printf("INTERNALDATE \"%s\"\n", mailfmt.InternalDate(m.Date))
		fmt.Printf("ENVELOPE %s\n", mailfmt.Envelope(m))
		fmt.Printf("BODYSTRUCTURE %s\n", mailfmt.BodyStructure(m))
		fmt.Println()
		fmt.Print(mailfmt.Message(m, *docID))
	default:
		log.Fatalf("Unknown item: %s", *item)
	}
}

func readMail(path string) (*mail.Mail, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var m mail.Mail
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse mail JSON: %w", err)
	}
	return &m, nil
}

func addressField(m *mail.Mail, field string) *mail.AddressField {
	switch field {
	case "to":
		return m.To
	case "cc":
		return m.Cc
	case "bcc":
		return m.Bcc
	default:
		return m.From
	}
}
