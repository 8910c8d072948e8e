package utils

import (
	"time"

	"github.com/petarmilev/invoice-recon/constants"
	"github.com/petarmilev/invoice-recon/gen/ent"
	reconpb "github.com/petarmilev/invoice-recon/gen/proto/recon/v1"
	"github.com/petarmilev/invoice-recon/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ---- ent -> entity ----

func ToDocument(d *ent.Document) *entity.Document {
	doc := &entity.Document{
		ID:        d.ID,
		Type:      constants.DocumentType(d.Type),
		DocNumber: d.DocNumber,
		DocDate:   d.DocDate,
		DueDate:   d.DueDate,
		Supplier:  d.Supplier,
		Currency:  constants.Currency(d.Currency),
		CreatedAt: d.CreatedAt,
	}
	for _, it := range d.Edges.Items {
		doc.Items = append(doc.Items, entity.LineItem{
			Name:       it.Name,
			Qty:        it.Qty,
			UnitPrice:  it.UnitPrice,
			VATPercent: it.VatPercent,
		})
	}
	for _, f := range d.Edges.Files {
		doc.Files = append(doc.Files, entity.FileRef{
			ID:          f.ID,
			FileName:    f.FileName,
			FileType:    f.FileType,
			StoragePath: f.StoragePath,
			UploadedAt:  f.UploadedAt,
		})
	}
	return doc
}

func ToPair(p *ent.DocumentPair) *entity.DocumentPair {
	return &entity.DocumentPair{
		ID:        p.ID,
		OrderID:   p.OrderID,
		InvoiceID: p.InvoiceID,
		CreatedAt: p.CreatedAt,
	}
}

func ToValidationResult(v *ent.ValidationResult) entity.ValidationResult {
	return entity.ValidationResult{
		ID:       v.ID,
		PairID:   v.PairID,
		Category: constants.ValidationCategory(v.Category),
		Message:  v.Message,
		Severity: constants.Severity(v.Severity),
	}
}

func ToValidationSummary(s *ent.ValidationSummary) *entity.ValidationSummary {
	return &entity.ValidationSummary{
		PairID:       s.PairID,
		ItemsStatus:  constants.ValidationStatus(s.ItemsStatus),
		VATStatus:    constants.ValidationStatus(s.VatStatus),
		DatesStatus:  constants.ValidationStatus(s.DatesStatus),
		TotalsStatus: constants.ValidationStatus(s.TotalsStatus),
		FinalStatus:  constants.ValidationStatus(s.FinalStatus),
		UpdatedAt:    s.UpdatedAt,
	}
}

// ---- entity -> pb ----

func ToPBLineItem(it entity.LineItem) *reconpb.LineItem {
	return &reconpb.LineItem{
		Name:       it.Name,
		Qty:        it.Qty,
		UnitPrice:  it.UnitPrice,
		VatPercent: it.VATPercent,
	}
}

func ToPBDocument(d *entity.Document) *reconpb.Document {
	out := &reconpb.Document{
		Id:        d.ID.String(),
		Type:      string(d.Type),
		DocNumber: strOrEmpty(d.DocNumber),
		DocDate:   strOrEmpty(d.DocDate),
		DueDate:   strOrEmpty(d.DueDate),
		Supplier:  strOrEmpty(d.Supplier),
		Currency:  string(d.Currency),
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, it := range d.Items {
		out.Items = append(out.Items, ToPBLineItem(it))
	}
	for _, f := range d.Files {
		out.Files = append(out.Files, &reconpb.FileRef{
			Id:          f.ID.String(),
			FileName:    f.FileName,
			FileType:    f.FileType,
			StoragePath: f.StoragePath,
			UploadedAt:  f.UploadedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

func ToPBExtracted(d entity.ExtractedDocument) *reconpb.ExtractedDocument {
	out := &reconpb.ExtractedDocument{
		DocNumber: d.DocNumber,
		IssueDate: d.IssueDate,
		DueDate:   d.DueDate,
		Supplier:  d.Supplier,
		Currency:  string(d.Currency),
		Locale:    string(d.Locale),
	}
	for _, it := range d.Items {
		out.Items = append(out.Items, ToPBLineItem(it))
	}
	return out
}

func ToPBValidationResult(v entity.ValidationResult) *reconpb.ValidationResult {
	return &reconpb.ValidationResult{
		Category: string(v.Category),
		Message:  v.Message,
		Severity: string(v.Severity),
	}
}

func ToPBValidationSummary(s *entity.ValidationSummary) *reconpb.ValidationSummary {
	if s == nil {
		return nil
	}
	return &reconpb.ValidationSummary{
		PairId:       s.PairID.String(),
		ItemsStatus:  string(s.ItemsStatus),
		VatStatus:    string(s.VATStatus),
		DatesStatus:  string(s.DatesStatus),
		TotalsStatus: string(s.TotalsStatus),
		FinalStatus:  string(s.FinalStatus),
	}
}

func ToPBTotals(t entity.Totals) *reconpb.Totals {
	return &reconpb.Totals{
		Subtotal:   t.Subtotal,
		VatTotal:   t.VATTotal,
		GrandTotal: t.GrandTotal,
	}
}

func ToPBPairView(v *entity.PairView) *reconpb.PairView {
	out := &reconpb.PairView{
		Pair: &reconpb.Pair{
			Id:        v.Pair.ID.String(),
			OrderId:   v.Pair.OrderID.String(),
			InvoiceId: v.Pair.InvoiceID.String(),
			CreatedAt: v.Pair.CreatedAt.UTC().Format(time.RFC3339),
		},
		Summary: ToPBValidationSummary(v.Summary),
	}
	if v.Order != nil {
		out.Order = ToPBDocument(v.Order)
	}
	if v.Invoice != nil {
		out.Invoice = ToPBDocument(v.Invoice)
	}
	for _, res := range v.Validations {
		out.Validations = append(out.Validations, ToPBValidationResult(res))
	}
	return out
}
