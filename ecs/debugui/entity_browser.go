package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/skyraid/ecs"
)

// EntityRow is one line of the entity table. Columns must match the browser's headers.
type EntityRow struct {
	ID      ecs.EntityId
	Columns []string
}

// RowSource lists the entities to show this frame.
type RowSource func() []EntityRow

// EntityBrowser is a filterable, paged table of entities.
type EntityBrowser struct {
	title              string
	headers            []string
	source             RowSource
	selectedEntityId   ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

func NewEntityBrowser(title string, headers []string, source RowSource, maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		title:              title,
		headers:            headers,
		source:             source,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

// Selected returns the id of the last clicked row.
func (eb *EntityBrowser) Selected() ecs.EntityId {
	return eb.selectedEntityId
}

func (eb *EntityBrowser) Render() {
	if !imgui.BeginV(eb.title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	rows := Filter(eb.source(), eb.filterText)
	totalPages := max(1, (len(rows)+eb.maxEntitiesPerPage-1)/eb.maxEntitiesPerPage)
	eb.currentPage = min(eb.currentPage, totalPages-1)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", int32(len(eb.headers)+1), tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		for _, h := range eb.headers {
			imgui.TableSetupColumn(h)
		}
		imgui.TableHeadersRow()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(rows))

		for _, row := range rows[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == row.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d:%d", row.ID.Kind(), row.ID.Index()), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = row.ID
			}

			for _, col := range row.Columns {
				imgui.TableNextColumn()
				imgui.Text(col)
			}
		}

		imgui.EndTable()
	}

	if totalPages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(rows)))
	}

	imgui.End()
}

// Filter keeps the rows whose id or any column contains text, ignoring case.
func Filter(rows []EntityRow, text string) []EntityRow {
	if text == "" {
		return rows
	}

	filtered := make([]EntityRow, 0, len(rows))
	filterLower := strings.ToLower(text)

	for _, row := range rows {
		idStr := fmt.Sprintf("%d:%d", row.ID.Kind(), row.ID.Index())
		columns := strings.ToLower(strings.Join(row.Columns, " "))

		if strings.Contains(idStr, filterLower) || strings.Contains(columns, filterLower) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
