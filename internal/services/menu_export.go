package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExportBranchMenu renders the branch's live menu as an xlsx workbook for
// vendors who maintain their catalog offline.
func (s *MenuService) ExportBranchMenu(ctx context.Context, branchID uint64) (*excelize.File, string, error) {
	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, "", err
	}
	if err := authorizeBranchOwner(ctx, branch); err != nil {
		return nil, "", err
	}

	items, err := s.menuRepo.GetBranchMenu(ctx, branchID, "", 0, 0)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	const sheet = "Menu"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Category", "Price", "Available", "Prep time (min)", "Tags", "Description"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, item := range items {
		row := rowIdx + 2
		values := []interface{}{
			item.ID, item.Name, item.Category, item.Price, item.IsAvailable,
		}
		if item.PreparationTimeMinutes != nil {
			values = append(values, *item.PreparationTimeMinutes)
		} else {
			values = append(values, "")
		}
		values = append(values, strings.Join(item.Tags, ", "))
		if item.Description != nil {
			values = append(values, *item.Description)
		} else {
			values = append(values, "")
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	fileName := fmt.Sprintf("menu_%s_v%d.xlsx", branch.BranchCode, branch.MenuVersion)
	return f, fileName, nil
}
