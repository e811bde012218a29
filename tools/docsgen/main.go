// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen writes the field reference of the confkit example schema as
// Markdown and YAML into the folder given as first argument.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tfctl/confkit/internal/config"
	"github.com/tfctl/confkit/internal/example"
	"github.com/tfctl/confkit/internal/output"
)

type FieldDoc struct {
	Path    string     `yaml:"path"`
	Type    string     `yaml:"type"`
	Hint    string     `yaml:"hint,omitempty"`
	Default string     `yaml:"default,omitempty"`
	Fields  []FieldDoc `yaml:"fields,omitempty"`
}

type TemplateData struct {
	Schema  string
	Doc     string
	File    string
	Fields  []FieldDoc
	Date    string
	Version string
}

const markdownTemplate = `# {{ .Schema }} fields

{{ with .Doc }}{{ . }}

{{ end }}Saved to ` + "`{{ .File }}`" + `. Generated {{ .Date }} for version {{ .Version }}.

| Field | Type | Default | Description |
|---|---|---|---|
{{ range .Fields }}{{ template "row" . }}{{ end }}
{{- define "row" }}| ` + "`{{ .Path }}`" + ` | {{ .Type }} | {{ .Default }} | {{ .Hint }} |
{{ range .Fields }}{{ template "row" . }}{{ end }}{{ end }}`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <folder>")
		os.Exit(1)
	}
	docs := os.Args[1]

	schema := example.Root()
	fields, err := describe(schema, "")
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(docs, 0755); err != nil {
		panic(err)
	}

	data := TemplateData{
		Schema:  schema.Name(),
		Doc:     schema.Description(),
		File:    "$XDG_CONFIG_HOME/confkit/config.json",
		Fields:  fields,
		Date:    time.Now().Format("January 2, 2006"),
		Version: getVersion(),
	}

	md := filepath.Join(docs, "fields.md")
	fmt.Println("Generating", md)
	file, err := os.Create(md)
	if err != nil {
		panic(err)
	}
	tmpl := template.Must(template.New("fields").Parse(markdownTemplate))
	if err := tmpl.Execute(file, data); err != nil {
		panic(err)
	}
	file.Close()

	y := filepath.Join(docs, "fields.yaml")
	fmt.Println("Generating", y)
	out, err := yaml.Marshal(fields)
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(y, out, 0644); err != nil {
		panic(err)
	}
}

// describe lists the fields of s with their defaults, nested groups as
// children.
func describe(s *config.Schema, prefix string) ([]FieldDoc, error) {
	g, err := s.New(nil, true)
	if err != nil {
		return nil, err
	}
	return describeInfos(g.Info(), prefix), nil
}

func describeInfos(infos []config.Info, prefix string) []FieldDoc {
	docs := make([]FieldDoc, 0, len(infos))
	for _, info := range infos {
		d := FieldDoc{
			Path: prefix + info.Field.Name,
			Type: info.Field.Type.Name(),
			Hint: info.Field.Hint,
		}
		if sub := info.Group(); sub != nil {
			d.Fields = describeInfos(sub.Info(), d.Path+".")
		} else {
			d.Default = output.InterfaceToString(info.Encoded(), "-")
		}
		docs = append(docs, d)
	}
	return docs
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
