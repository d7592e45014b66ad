package api

import (
	"fmt"
	"time"

	"escp2render/internal/charset"
	"escp2render/internal/config"
	"escp2render/internal/jobqueue"
	"escp2render/internal/layout"
	"escp2render/internal/node"
	"escp2render/internal/paper"
	"escp2render/internal/render"
	"escp2render/internal/transport"
)

// RenderEnv bundles the document-global settings every render needs,
// built once from config and reused across requests — the render-domain
// analogue of the teacher's EPSONConfig held by its driver.
type RenderEnv struct {
	paper   paper.Config
	charset charset.Charset
	table   charset.Table
	style   node.Resolved
}

// NewRenderEnv builds a RenderEnv from the application's paper and
// rendering configuration.
func NewRenderEnv(paperCfg config.PaperConfig, renderCfg config.RenderingConfig) RenderEnv {
	return RenderEnv{
		paper: paper.Config{
			WidthInches:  paperCfg.WidthInches,
			HeightInches: paperCfg.HeightInches,
			Margins: paper.Margins{
				Top:    paperCfg.MarginTop,
				Bottom: paperCfg.MarginBottom,
				Left:   paperCfg.MarginLeft,
				Right:  paperCfg.MarginRight,
			},
			LinesPerPage: paperCfg.LinesPerPage,
		},
		charset: charset.Charset(renderCfg.InternationalCharset),
		table:   charset.Table(renderCfg.CharacterTable),
		style:   node.Resolved{CPI: node.CPI(renderCfg.DefaultCPI)},
	}
}

// render runs the measure -> position -> flatten -> emit pipeline over
// doc and returns the resulting ESC/P2 byte stream, mirroring
// jobqueue.Processor.Process's render half for the synchronous
// POST /v1/render endpoint, which never touches a transport.
func (e RenderEnv) render(doc node.Node) ([]byte, time.Duration, error) {
	start := time.Now()

	measured, err := layout.Measure(doc, e.paper.ContentWidthDots(), e.paper.ContentHeightDots(), e.style)
	if err != nil {
		return nil, time.Since(start), fmt.Errorf("measure: %w", err)
	}

	placed := layout.Position(measured, e.paper.Margins.Left, e.paper.Margins.Top)
	items := render.Flatten(placed)

	bytes, _, err := render.Emit(items, render.Params{Charset: e.charset, Table: e.table, Paper: e.paper}, e.style)
	if err != nil {
		return nil, time.Since(start), fmt.Errorf("emit: %w", err)
	}
	return bytes, time.Since(start), nil
}

// NewProcessor builds a jobqueue.Processor sharing e's paper/charset/
// style settings, writing to printer with the given per-job timeout.
func (e RenderEnv) NewProcessor(queue *jobqueue.Queue, printer transport.Printer, timeout time.Duration) *jobqueue.Processor {
	return &jobqueue.Processor{
		Queue:     queue,
		Paper:     e.paper,
		Charset:   e.charset,
		Table:     e.table,
		Style:     e.style,
		Transport: printer,
		Timeout:   timeout,
	}
}
