package allocation

import (
	"fmt"
	"strings"

	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/shopspring/decimal"
)

// Parser normalizes the raw submitted field set of one order line into an
// AllocationRequest. Errors are collected, not thrown: parsing continues so
// the caller ends up with the complete failure list for the submission.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse dispatches on the line's tracking mode. The returned request may
// carry zero entries, meaning nothing ships for this line.
func (p *Parser) Parse(line *model.OrderLine, cls Classification, raw *model.RawLineSubmission, policy Policy) (*model.AllocationRequest, []model.LineError) {
	req := &model.AllocationRequest{
		OrderLineID:  line.ID,
		ProductID:    cls.ProductID,
		TrackingMode: cls.TrackingMode,
		MORef:        cls.MORef,
	}

	var errs []model.LineError
	switch {
	case cls.TrackingMode == constant.TrackingSerial:
		req.Entries, errs = p.parseSerials(line, raw, policy)
	case cls.TrackingMode == constant.TrackingLot:
		req.Entries, errs = p.parseLots(line, raw, policy)
	case cls.ProductID != 0:
		req.Entries, errs = p.parseUntracked(line, raw, policy)
	default:
		req.Entries, errs = p.parseFreeText(line, raw, policy)
	}
	return req, errs
}

// parseSerials turns every non-blank serial into one entry of quantity one.
// The submitted line quantity is advisory here: what actually ships is the
// count of serials, mismatches are silently overridden.
func (p *Parser) parseSerials(line *model.OrderLine, raw *model.RawLineSubmission, policy Policy) ([]model.AllocationEntry, []model.LineError) {
	var entries []model.AllocationEntry
	for _, s := range raw.Serials {
		serial := strings.TrimSpace(s.SerialNumber)
		if serial == "" {
			continue
		}
		warehouseID := s.WarehouseID
		if warehouseID == 0 {
			warehouseID = policy.DefaultWarehouseID
		}
		entries = append(entries, model.AllocationEntry{
			Kind:        model.EntrySerial,
			Quantity:    decimal.NewFromInt(1),
			WarehouseID: warehouseID,
			BatchLabel:  serial,
		})
	}

	if len(entries) == 0 {
		if qty, err := parseQty(raw.Quantity); err == nil && qty.IsPositive() {
			return nil, []model.LineError{model.NewLineError(line.ID, constant.ErrRequiredFieldMissing,
				fmt.Sprintf("line %d ships a serial-tracked product but no serial numbers were submitted", line.ID))}
		}
	}
	return entries, nil
}

func (p *Parser) parseLots(line *model.OrderLine, raw *model.RawLineSubmission, policy Policy) ([]model.AllocationEntry, []model.LineError) {
	var entries []model.AllocationEntry
	var errs []model.LineError
	for _, l := range raw.Lots {
		lot := strings.TrimSpace(l.LotNumber)
		if lot == "" {
			continue
		}
		qty, err := parseQty(l.Quantity)
		if err != nil {
			errs = append(errs, model.NewLineError(line.ID, constant.ErrInvalidRequest,
				fmt.Sprintf("invalid quantity %q for lot %q", l.Quantity, lot)))
			continue
		}
		if !qty.IsPositive() {
			// A named lot with no quantity only ships under the ship-all
			// policy, and only when it is the line's sole entry.
			if !policy.ShipAll || len(raw.Lots) != 1 {
				continue
			}
			qty = line.RemainingQty()
			if !qty.IsPositive() {
				continue
			}
		}
		warehouseID := l.WarehouseID
		if warehouseID == 0 {
			warehouseID = policy.DefaultWarehouseID
		}
		entries = append(entries, model.AllocationEntry{
			Kind:        model.EntryLot,
			Quantity:    qty,
			WarehouseID: warehouseID,
			BatchLabel:  lot,
		})
	}

	if len(entries) == 0 && len(errs) == 0 {
		if qty, err := parseQty(raw.Quantity); err == nil && qty.IsPositive() {
			errs = append(errs, model.NewLineError(line.ID, constant.ErrRequiredFieldMissing,
				fmt.Sprintf("line %d ships a lot-tracked product but no lot entries were submitted", line.ID)))
		}
	}
	return entries, errs
}

func (p *Parser) parseUntracked(line *model.OrderLine, raw *model.RawLineSubmission, policy Policy) ([]model.AllocationEntry, []model.LineError) {
	if len(raw.Warehouses) > 0 {
		var entries []model.AllocationEntry
		var errs []model.LineError
		for _, w := range raw.Warehouses {
			qty, err := parseQty(w.Quantity)
			if err != nil {
				errs = append(errs, model.NewLineError(line.ID, constant.ErrInvalidRequest,
					fmt.Sprintf("invalid quantity %q for warehouse %d", w.Quantity, w.WarehouseID)))
				continue
			}
			if !qty.IsPositive() {
				continue
			}
			if w.WarehouseID == 0 {
				errs = append(errs, model.NewLineError(line.ID, constant.ErrRequiredFieldMissing,
					fmt.Sprintf("line %d has a warehouse split without a warehouse", line.ID)))
				continue
			}
			entries = append(entries, model.AllocationEntry{
				Kind:        model.EntryWarehouseSplit,
				Quantity:    qty,
				WarehouseID: w.WarehouseID,
			})
		}
		return entries, errs
	}

	qty, err := parseQty(raw.Quantity)
	if err != nil {
		return nil, []model.LineError{model.NewLineError(line.ID, constant.ErrInvalidRequest,
			fmt.Sprintf("invalid quantity %q for line %d", raw.Quantity, line.ID))}
	}
	if !qty.IsPositive() {
		if !policy.ShipAll {
			return nil, nil
		}
		qty = line.RemainingQty()
		if !qty.IsPositive() {
			return nil, nil
		}
	}
	if policy.DefaultWarehouseID == 0 {
		return nil, []model.LineError{model.NewLineError(line.ID, constant.ErrRequiredFieldMissing,
			fmt.Sprintf("line %d has a quantity but no warehouse to ship from", line.ID))}
	}
	return []model.AllocationEntry{{
		Kind:        model.EntrySimple,
		Quantity:    qty,
		WarehouseID: policy.DefaultWarehouseID,
	}}, nil
}

// parseFreeText handles lines with no product at all. They produce detail
// lines but never touch stock, so a missing warehouse is acceptable.
func (p *Parser) parseFreeText(line *model.OrderLine, raw *model.RawLineSubmission, policy Policy) ([]model.AllocationEntry, []model.LineError) {
	qty, err := parseQty(raw.Quantity)
	if err != nil {
		return nil, []model.LineError{model.NewLineError(line.ID, constant.ErrInvalidRequest,
			fmt.Sprintf("invalid quantity %q for line %d", raw.Quantity, line.ID))}
	}
	if !qty.IsPositive() {
		if !policy.ShipAll {
			return nil, nil
		}
		qty = line.RemainingQty()
		if !qty.IsPositive() {
			return nil, nil
		}
	}
	return []model.AllocationEntry{{
		Kind:        model.EntrySimple,
		Quantity:    qty,
		WarehouseID: policy.DefaultWarehouseID,
	}}, nil
}

// parseQty reads a submitted quantity string. Blank means zero; a value that
// does not parse or is negative is an error.
func parseQty(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	qty, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if qty.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative quantity %s", s)
	}
	return qty, nil
}
