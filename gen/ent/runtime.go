// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/petarmilev/invoice-recon/db/ent/schema"
	"github.com/petarmilev/invoice-recon/gen/ent/document"
	"github.com/petarmilev/invoice-recon/gen/ent/documentfile"
	"github.com/petarmilev/invoice-recon/gen/ent/documentpair"
	"github.com/petarmilev/invoice-recon/gen/ent/lineitem"
	"github.com/petarmilev/invoice-recon/gen/ent/validationresult"
	"github.com/petarmilev/invoice-recon/gen/ent/validationsummary"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescType is the schema descriptor for type field.
	documentDescType := documentFields[1].Descriptor()
	// document.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	document.TypeValidator = func() func(string) error {
		validators := documentDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescCurrency is the schema descriptor for currency field.
	documentDescCurrency := documentFields[6].Descriptor()
	// document.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	document.CurrencyValidator = func() func(string) error {
		validators := documentDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[7].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	documentfileFields := schema.DocumentFile{}.Fields()
	_ = documentfileFields
	// documentfileDescFileName is the schema descriptor for file_name field.
	documentfileDescFileName := documentfileFields[2].Descriptor()
	// documentfile.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	documentfile.FileNameValidator = documentfileDescFileName.Validators[0].(func(string) error)
	// documentfileDescFileType is the schema descriptor for file_type field.
	documentfileDescFileType := documentfileFields[3].Descriptor()
	// documentfile.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	documentfile.FileTypeValidator = documentfileDescFileType.Validators[0].(func(string) error)
	// documentfileDescStoragePath is the schema descriptor for storage_path field.
	documentfileDescStoragePath := documentfileFields[4].Descriptor()
	// documentfile.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	documentfile.StoragePathValidator = documentfileDescStoragePath.Validators[0].(func(string) error)
	// documentfileDescUploadedAt is the schema descriptor for uploaded_at field.
	documentfileDescUploadedAt := documentfileFields[5].Descriptor()
	// documentfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	documentfile.DefaultUploadedAt = documentfileDescUploadedAt.Default.(func() time.Time)
	// documentfileDescID is the schema descriptor for id field.
	documentfileDescID := documentfileFields[0].Descriptor()
	// documentfile.DefaultID holds the default value on creation for the id field.
	documentfile.DefaultID = documentfileDescID.Default.(func() uuid.UUID)
	documentpairFields := schema.DocumentPair{}.Fields()
	_ = documentpairFields
	// documentpairDescCreatedAt is the schema descriptor for created_at field.
	documentpairDescCreatedAt := documentpairFields[3].Descriptor()
	// documentpair.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentpair.DefaultCreatedAt = documentpairDescCreatedAt.Default.(func() time.Time)
	// documentpairDescID is the schema descriptor for id field.
	documentpairDescID := documentpairFields[0].Descriptor()
	// documentpair.DefaultID holds the default value on creation for the id field.
	documentpair.DefaultID = documentpairDescID.Default.(func() uuid.UUID)
	lineitemFields := schema.LineItem{}.Fields()
	_ = lineitemFields
	// lineitemDescName is the schema descriptor for name field.
	lineitemDescName := lineitemFields[2].Descriptor()
	// lineitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lineitem.NameValidator = lineitemDescName.Validators[0].(func(string) error)
	// lineitemDescID is the schema descriptor for id field.
	lineitemDescID := lineitemFields[0].Descriptor()
	// lineitem.DefaultID holds the default value on creation for the id field.
	lineitem.DefaultID = lineitemDescID.Default.(func() uuid.UUID)
	validationresultFields := schema.ValidationResult{}.Fields()
	_ = validationresultFields
	// validationresultDescCategory is the schema descriptor for category field.
	validationresultDescCategory := validationresultFields[2].Descriptor()
	// validationresult.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	validationresult.CategoryValidator = func() func(string) error {
		validators := validationresultDescCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category string) error {
			for _, fn := range fns {
				if err := fn(category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationresultDescMessage is the schema descriptor for message field.
	validationresultDescMessage := validationresultFields[3].Descriptor()
	// validationresult.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	validationresult.MessageValidator = validationresultDescMessage.Validators[0].(func(string) error)
	// validationresultDescSeverity is the schema descriptor for severity field.
	validationresultDescSeverity := validationresultFields[4].Descriptor()
	// validationresult.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	validationresult.SeverityValidator = func() func(string) error {
		validators := validationresultDescSeverity.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(severity string) error {
			for _, fn := range fns {
				if err := fn(severity); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationresultDescCreatedAt is the schema descriptor for created_at field.
	validationresultDescCreatedAt := validationresultFields[5].Descriptor()
	// validationresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	validationresult.DefaultCreatedAt = validationresultDescCreatedAt.Default.(func() time.Time)
	// validationresultDescID is the schema descriptor for id field.
	validationresultDescID := validationresultFields[0].Descriptor()
	// validationresult.DefaultID holds the default value on creation for the id field.
	validationresult.DefaultID = validationresultDescID.Default.(func() uuid.UUID)
	validationsummaryFields := schema.ValidationSummary{}.Fields()
	_ = validationsummaryFields
	// validationsummaryDescItemsStatus is the schema descriptor for items_status field.
	validationsummaryDescItemsStatus := validationsummaryFields[2].Descriptor()
	// validationsummary.ItemsStatusValidator is a validator for the "items_status" field. It is called by the builders before save.
	validationsummary.ItemsStatusValidator = func() func(string) error {
		validators := validationsummaryDescItemsStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(items_status string) error {
			for _, fn := range fns {
				if err := fn(items_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationsummaryDescVatStatus is the schema descriptor for vat_status field.
	validationsummaryDescVatStatus := validationsummaryFields[3].Descriptor()
	// validationsummary.VatStatusValidator is a validator for the "vat_status" field. It is called by the builders before save.
	validationsummary.VatStatusValidator = func() func(string) error {
		validators := validationsummaryDescVatStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(vat_status string) error {
			for _, fn := range fns {
				if err := fn(vat_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationsummaryDescDatesStatus is the schema descriptor for dates_status field.
	validationsummaryDescDatesStatus := validationsummaryFields[4].Descriptor()
	// validationsummary.DatesStatusValidator is a validator for the "dates_status" field. It is called by the builders before save.
	validationsummary.DatesStatusValidator = func() func(string) error {
		validators := validationsummaryDescDatesStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(dates_status string) error {
			for _, fn := range fns {
				if err := fn(dates_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationsummaryDescTotalsStatus is the schema descriptor for totals_status field.
	validationsummaryDescTotalsStatus := validationsummaryFields[5].Descriptor()
	// validationsummary.TotalsStatusValidator is a validator for the "totals_status" field. It is called by the builders before save.
	validationsummary.TotalsStatusValidator = func() func(string) error {
		validators := validationsummaryDescTotalsStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(totals_status string) error {
			for _, fn := range fns {
				if err := fn(totals_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationsummaryDescFinalStatus is the schema descriptor for final_status field.
	validationsummaryDescFinalStatus := validationsummaryFields[6].Descriptor()
	// validationsummary.FinalStatusValidator is a validator for the "final_status" field. It is called by the builders before save.
	validationsummary.FinalStatusValidator = func() func(string) error {
		validators := validationsummaryDescFinalStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(final_status string) error {
			for _, fn := range fns {
				if err := fn(final_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationsummaryDescUpdatedAt is the schema descriptor for updated_at field.
	validationsummaryDescUpdatedAt := validationsummaryFields[7].Descriptor()
	// validationsummary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	validationsummary.DefaultUpdatedAt = validationsummaryDescUpdatedAt.Default.(func() time.Time)
	// validationsummary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	validationsummary.UpdateDefaultUpdatedAt = validationsummaryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// validationsummaryDescID is the schema descriptor for id field.
	validationsummaryDescID := validationsummaryFields[0].Descriptor()
	// validationsummary.DefaultID holds the default value on creation for the id field.
	validationsummary.DefaultID = validationsummaryDescID.Default.(func() uuid.UUID)
}
