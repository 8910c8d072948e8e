// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "doc_number", Type: field.TypeString, Nullable: true},
		{Name: "doc_date", Type: field.TypeString, Nullable: true},
		{Name: "due_date", Type: field.TypeString, Nullable: true},
		{Name: "supplier", Type: field.TypeString, Nullable: true},
		{Name: "currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[7]},
			},
		},
	}
	// DocumentFilesColumns holds the columns for the "document_files" table.
	DocumentFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// DocumentFilesTable holds the schema information for the "document_files" table.
	DocumentFilesTable = &schema.Table{
		Name:       "document_files",
		Columns:    DocumentFilesColumns,
		PrimaryKey: []*schema.Column{DocumentFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_files_documents_files",
				Columns:    []*schema.Column{DocumentFilesColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentfile_document_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentFilesColumns[5]},
			},
		},
	}
	// DocumentPairsColumns holds the columns for the "document_pairs" table.
	DocumentPairsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "order_id", Type: field.TypeUUID},
		{Name: "invoice_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentPairsTable holds the schema information for the "document_pairs" table.
	DocumentPairsTable = &schema.Table{
		Name:       "document_pairs",
		Columns:    DocumentPairsColumns,
		PrimaryKey: []*schema.Column{DocumentPairsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "documentpair_order_id_invoice_id",
				Unique:  true,
				Columns: []*schema.Column{DocumentPairsColumns[1], DocumentPairsColumns[2]},
			},
		},
	}
	// LineItemsColumns holds the columns for the "line_items" table.
	LineItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "qty", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "vat_percent", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// LineItemsTable holds the schema information for the "line_items" table.
	LineItemsTable = &schema.Table{
		Name:       "line_items",
		Columns:    LineItemsColumns,
		PrimaryKey: []*schema.Column{LineItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "line_items_documents_items",
				Columns:    []*schema.Column{LineItemsColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lineitem_document_id",
				Unique:  false,
				Columns: []*schema.Column{LineItemsColumns[5]},
			},
		},
	}
	// ValidationResultsColumns holds the columns for the "validation_results" table.
	ValidationResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
		{Name: "severity", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "pair_id", Type: field.TypeUUID},
	}
	// ValidationResultsTable holds the schema information for the "validation_results" table.
	ValidationResultsTable = &schema.Table{
		Name:       "validation_results",
		Columns:    ValidationResultsColumns,
		PrimaryKey: []*schema.Column{ValidationResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "validation_results_document_pairs_validations",
				Columns:    []*schema.Column{ValidationResultsColumns[5]},
				RefColumns: []*schema.Column{DocumentPairsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "validationresult_pair_id",
				Unique:  false,
				Columns: []*schema.Column{ValidationResultsColumns[5]},
			},
		},
	}
	// ValidationSummariesColumns holds the columns for the "validation_summaries" table.
	ValidationSummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "items_status", Type: field.TypeString},
		{Name: "vat_status", Type: field.TypeString},
		{Name: "dates_status", Type: field.TypeString},
		{Name: "totals_status", Type: field.TypeString},
		{Name: "final_status", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "pair_id", Type: field.TypeUUID, Unique: true},
	}
	// ValidationSummariesTable holds the schema information for the "validation_summaries" table.
	ValidationSummariesTable = &schema.Table{
		Name:       "validation_summaries",
		Columns:    ValidationSummariesColumns,
		PrimaryKey: []*schema.Column{ValidationSummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "validation_summaries_document_pairs_summary",
				Columns:    []*schema.Column{ValidationSummariesColumns[7]},
				RefColumns: []*schema.Column{DocumentPairsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "validationsummary_pair_id",
				Unique:  true,
				Columns: []*schema.Column{ValidationSummariesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		DocumentFilesTable,
		DocumentPairsTable,
		LineItemsTable,
		ValidationResultsTable,
		ValidationSummariesTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	DocumentFilesTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentFilesTable.Annotation = &entsql.Annotation{
		Table: "document_files",
	}
	DocumentPairsTable.Annotation = &entsql.Annotation{
		Table: "document_pairs",
	}
	LineItemsTable.ForeignKeys[0].RefTable = DocumentsTable
	LineItemsTable.Annotation = &entsql.Annotation{
		Table: "line_items",
	}
	ValidationResultsTable.ForeignKeys[0].RefTable = DocumentPairsTable
	ValidationResultsTable.Annotation = &entsql.Annotation{
		Table: "validation_results",
	}
	ValidationSummariesTable.ForeignKeys[0].RefTable = DocumentPairsTable
	ValidationSummariesTable.Annotation = &entsql.Annotation{
		Table: "validation_summaries",
	}
}
