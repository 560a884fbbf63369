// Command publictext is the CLI for the red-head document engine. It imports
// DOCX bodies, samples style rules from reference files, renders finished
// documents, and validates letterhead templates.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	publictext "github.com/leew00726/publicText"
	"github.com/leew00726/publicText/classify"
	"github.com/leew00726/publicText/feature"
	"github.com/leew00726/publicText/infer"
	"github.com/leew00726/publicText/letterhead"
	"github.com/leew00726/publicText/model"
)

const version = "0.1.0"

// CLI defines the command-line interface for publictext.
var CLI struct {
	Import   ImportCmd   `cmd:"" help:"Import a DOCX file into the editable document form"`
	Analyze  AnalyzeCmd  `cmd:"" help:"Sample reference files and aggregate style rules"`
	Render   RenderCmd   `cmd:"" help:"Render a document to DOCX"`
	Validate ValidateCmd `cmd:"" help:"Validate a letterhead template's geometry"`
	Revise   ReviseCmd   `cmd:"" help:"Apply a revision round to a style rule set"`
	Check    CheckCmd    `cmd:"" help:"Check a document body against house conventions"`
	Scaffold ScaffoldCmd `cmd:"" help:"Build a starter document body from style rules"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// importResult is the JSON shape written by the import and scaffold commands
// and read back by the render command. Rules travel in their generic map form
// because the typed rule set embeds interface-typed template nodes.
type importResult struct {
	Document *model.Document `json:"document"`
	Fields   fieldsJSON      `json:"fields"`
	Report   any             `json:"report,omitempty"`
	Rules    map[string]any  `json:"rules,omitempty"`
}

// fieldsJSON mirrors model.Fields without the TopicRules pointer.
type fieldsJSON struct {
	Title             string             `json:"title"`
	MainTo            string             `json:"mainTo"`
	SignOff           string             `json:"signOff"`
	DocNo             string             `json:"docNo"`
	Signatory         string             `json:"signatory"`
	CopyNo            string             `json:"copyNo"`
	Date              string             `json:"date"`
	ExportWithRedhead bool               `json:"exportWithRedhead"`
	Attachments       []model.Attachment `json:"attachments"`
}

func toFieldsJSON(f model.Fields) fieldsJSON {
	return fieldsJSON{
		Title:             f.Title,
		MainTo:            f.MainTo,
		SignOff:           f.SignOff,
		DocNo:             f.DocNo,
		Signatory:         f.Signatory,
		CopyNo:            f.CopyNo,
		Date:              f.Date,
		ExportWithRedhead: f.ExportWithRedhead,
		Attachments:       f.Attachments,
	}
}

func (f fieldsJSON) toModel() model.Fields {
	return model.Fields{
		Title:             f.Title,
		MainTo:            f.MainTo,
		SignOff:           f.SignOff,
		DocNo:             f.DocNo,
		Signatory:         f.Signatory,
		CopyNo:            f.CopyNo,
		Date:              f.Date,
		ExportWithRedhead: f.ExportWithRedhead,
		Attachments:       f.Attachments,
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	data = append(data, '\n')
	if path == "" || path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func loadRules(path string) (*model.StyleRules, error) {
	if path == "" {
		return nil, nil
	}
	var m map[string]any
	if err := readJSON(path, &m); err != nil {
		return nil, err
	}
	// analyze output wraps the rules; accept both shapes
	if inner, ok := m["rules"].(map[string]any); ok {
		m = inner
	}
	return model.RulesFromMap(m)
}

func builtinTemplate(name string) (*model.LetterheadTemplate, error) {
	switch name {
	case "simple":
		return letterhead.BuiltinSimple(), nil
	case "common":
		return letterhead.BuiltinCommon(), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown letterhead %q (want simple, common or none)", name)
	}
}

// ImportCmd imports a DOCX file into the editable document form.
type ImportCmd struct {
	Path string `arg:"" help:"Path to the DOCX file" type:"existingfile"`
	Out  string `short:"o" default:"-" help:"Output JSON path (- for stdout)"`
}

func (c *ImportCmd) Run() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}
	doc, fields, report, err := publictext.Import(data)
	if err != nil {
		return fmt.Errorf("importing %s: %w", c.Path, err)
	}
	for _, w := range report.NumberingWarnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}
	for _, w := range report.TableWarnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	return writeJSON(c.Out, importResult{Document: doc, Fields: toFieldsJSON(fields), Report: report})
}

// AnalyzeCmd samples reference files and aggregates their style rules.
type AnalyzeCmd struct {
	Paths  []string `arg:"" help:"Reference DOCX/PDF files" type:"existingfile"`
	Config string   `short:"c" help:"YAML config overriding extraction thresholds" type:"existingfile"`
	Out    string   `short:"o" default:"-" help:"Output JSON path (- for stdout)"`
}

func (c *AnalyzeCmd) Run() error {
	var cfg feature.Config
	if c.Config != "" {
		raw, err := os.ReadFile(c.Config)
		if err != nil {
			return err
		}
		cfg, err = feature.ParseConfig(raw)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", c.Config, err)
		}
	}

	var samples []*model.Features
	for _, path := range c.Paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		features, err := publictext.Analyze(data).Filename(path).Config(cfg).Features()
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", path, err)
		}
		samples = append(samples, features)
	}

	rules, confidence, err := publictext.Aggregate(samples)
	if err != nil {
		return err
	}
	return writeJSON(c.Out, map[string]any{
		"rules":      rules.ToMap(),
		"confidence": confidence,
	})
}

// RenderCmd renders an imported document back to DOCX.
type RenderCmd struct {
	Doc        string `arg:"" help:"Document JSON as written by import" type:"existingfile"`
	Rules      string `short:"r" help:"Style rules JSON as written by analyze" type:"existingfile"`
	Letterhead string `short:"l" default:"simple" enum:"simple,common,none" help:"Letterhead template: simple, common or none"`
	UnitName   string `short:"u" help:"Issuing unit name rendered in the letterhead"`
	Out        string `short:"o" default:"out.docx" help:"Output DOCX path"`
}

func (c *RenderCmd) Run() error {
	var in importResult
	if err := readJSON(c.Doc, &in); err != nil {
		return err
	}
	if in.Document == nil {
		return fmt.Errorf("%s carries no document", c.Doc)
	}
	fields := in.Fields.toModel()
	rules, err := loadRules(c.Rules)
	if err != nil {
		return err
	}
	if rules == nil && in.Rules != nil {
		if rules, err = model.RulesFromMap(in.Rules); err != nil {
			return fmt.Errorf("parsing embedded rules: %w", err)
		}
	}
	fields.TopicRules = rules
	tpl, err := builtinTemplate(c.Letterhead)
	if err != nil {
		return err
	}

	out, err := publictext.Render(in.Document, fields).
		UnitName(c.UnitName).
		Letterhead(tpl).
		Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(c.Out, out, 0o644)
}

// ValidateCmd validates a letterhead template's geometry.
type ValidateCmd struct {
	Template string `arg:"" help:"Letterhead template JSON" type:"existingfile"`
}

func (c *ValidateCmd) Run() error {
	var tpl model.LetterheadTemplate
	if err := readJSON(c.Template, &tpl); err != nil {
		return err
	}
	errs, warnings := publictext.ValidateLetterhead(&tpl)
	for _, w := range warnings {
		fmt.Println("warning:", w)
	}
	for _, e := range errs {
		fmt.Println("error:", e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("template has %d error(s)", len(errs))
	}
	fmt.Println("ok")
	return nil
}

// ReviseCmd applies a revision round to a style rule set.
type ReviseCmd struct {
	Rules       string `arg:"" help:"Current rules JSON" type:"existingfile"`
	Instruction string `short:"i" help:"Natural-language adjustment, e.g. 正文字体改为仿宋"`
	Patch       string `short:"p" help:"Explicit field patch JSON" type:"existingfile"`
	AI          string `help:"AI-proposed patch JSON" type:"existingfile"`
	Out         string `short:"o" default:"-" help:"Output JSON path (- for stdout)"`
}

func (c *ReviseCmd) Run() error {
	rules, err := loadRules(c.Rules)
	if err != nil {
		return err
	}
	if rules == nil {
		return fmt.Errorf("%s carries no rules", c.Rules)
	}

	var explicit, ai map[string]any
	if c.Patch != "" {
		if err := readJSON(c.Patch, &explicit); err != nil {
			return err
		}
	}
	if c.AI != "" {
		if err := readJSON(c.AI, &ai); err != nil {
			return err
		}
	}

	revised, err := infer.Revise(rules, c.Instruction, explicit, ai)
	if err != nil {
		return err
	}
	return writeJSON(c.Out, map[string]any{"rules": revised.ToMap()})
}

// ScaffoldCmd builds a starter document body from a topic's style rules.
type ScaffoldCmd struct {
	Rules string `arg:"" help:"Style rules JSON" type:"existingfile"`
	Out   string `short:"o" default:"-" help:"Output JSON path (- for stdout)"`
}

func (c *ScaffoldCmd) Run() error {
	rules, err := loadRules(c.Rules)
	if err != nil {
		return err
	}
	if rules == nil {
		return fmt.Errorf("%s carries no rules", c.Rules)
	}
	doc := publictext.BuildTopicBody(rules)
	return writeJSON(c.Out, importResult{
		Document: doc,
		Fields:   fieldsJSON{ExportWithRedhead: true},
		Rules:    rules.ToMap(),
	})
}

// CheckCmd checks a document body against house conventions.
type CheckCmd struct {
	Doc string `arg:"" help:"Document JSON as written by import" type:"existingfile"`
}

func (c *CheckCmd) Run() error {
	var in importResult
	if err := readJSON(c.Doc, &in); err != nil {
		return err
	}
	if in.Document == nil {
		return fmt.Errorf("%s carries no document", c.Doc)
	}
	issues := classify.CheckDocument(in.Document)
	errCount := 0
	for _, is := range issues {
		fmt.Printf("%s %s %s: %s\n", is.Level, is.Code, is.Path, is.Message)
		if is.Level == classify.IssueError {
			errCount++
		}
	}
	if errCount > 0 {
		return fmt.Errorf("document has %d error(s)", errCount)
	}
	fmt.Println("ok")
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println("publictext", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("publictext"),
		kong.Description("Red-head official document engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
