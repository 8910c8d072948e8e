// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: recon/v1/recon.proto

package reconv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Qty           float64                `protobuf:"fixed64,2,opt,name=qty,proto3" json:"qty,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,3,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	VatPercent    float64                `protobuf:"fixed64,4,opt,name=vat_percent,json=vatPercent,proto3" json:"vat_percent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_recon_v1_recon_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{0}
}

func (x *LineItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *LineItem) GetQty() float64 {
	if x != nil {
		return x.Qty
	}
	return 0
}

func (x *LineItem) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *LineItem) GetVatPercent() float64 {
	if x != nil {
		return x.VatPercent
	}
	return 0
}

type FileRef struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FileType      string                 `protobuf:"bytes,3,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"`
	StoragePath   string                 `protobuf:"bytes,4,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FileRef) Reset() {
	*x = FileRef{}
	mi := &file_recon_v1_recon_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FileRef) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileRef) ProtoMessage() {}

func (x *FileRef) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FileRef.ProtoReflect.Descriptor instead.
func (*FileRef) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{1}
}

func (x *FileRef) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *FileRef) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *FileRef) GetFileType() string {
	if x != nil {
		return x.FileType
	}
	return ""
}

func (x *FileRef) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *FileRef) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"` // ORDER | INVOICE
	DocNumber     string                 `protobuf:"bytes,3,opt,name=doc_number,json=docNumber,proto3" json:"doc_number,omitempty"`
	DocDate       string                 `protobuf:"bytes,4,opt,name=doc_date,json=docDate,proto3" json:"doc_date,omitempty"`
	DueDate       string                 `protobuf:"bytes,5,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	Supplier      string                 `protobuf:"bytes,6,opt,name=supplier,proto3" json:"supplier,omitempty"`
	Currency      string                 `protobuf:"bytes,7,opt,name=currency,proto3" json:"currency,omitempty"` // MKD | EUR | USD | GBP
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,9,rep,name=items,proto3" json:"items,omitempty"`
	Files         []*FileRef             `protobuf:"bytes,10,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_recon_v1_recon_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{2}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Document) GetDocNumber() string {
	if x != nil {
		return x.DocNumber
	}
	return ""
}

func (x *Document) GetDocDate() string {
	if x != nil {
		return x.DocDate
	}
	return ""
}

func (x *Document) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Document) GetSupplier() string {
	if x != nil {
		return x.Supplier
	}
	return ""
}

func (x *Document) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Document) GetFiles() []*FileRef {
	if x != nil {
		return x.Files
	}
	return nil
}

type ExtractedDocument struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocNumber     string                 `protobuf:"bytes,1,opt,name=doc_number,json=docNumber,proto3" json:"doc_number,omitempty"`
	IssueDate     string                 `protobuf:"bytes,2,opt,name=issue_date,json=issueDate,proto3" json:"issue_date,omitempty"`
	DueDate       string                 `protobuf:"bytes,3,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	Supplier      string                 `protobuf:"bytes,4,opt,name=supplier,proto3" json:"supplier,omitempty"`
	Currency      string                 `protobuf:"bytes,5,opt,name=currency,proto3" json:"currency,omitempty"`
	Locale        string                 `protobuf:"bytes,6,opt,name=locale,proto3" json:"locale,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,7,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractedDocument) Reset() {
	*x = ExtractedDocument{}
	mi := &file_recon_v1_recon_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedDocument) ProtoMessage() {}

func (x *ExtractedDocument) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedDocument.ProtoReflect.Descriptor instead.
func (*ExtractedDocument) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{3}
}

func (x *ExtractedDocument) GetDocNumber() string {
	if x != nil {
		return x.DocNumber
	}
	return ""
}

func (x *ExtractedDocument) GetIssueDate() string {
	if x != nil {
		return x.IssueDate
	}
	return ""
}

func (x *ExtractedDocument) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *ExtractedDocument) GetSupplier() string {
	if x != nil {
		return x.Supplier
	}
	return ""
}

func (x *ExtractedDocument) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *ExtractedDocument) GetLocale() string {
	if x != nil {
		return x.Locale
	}
	return ""
}

func (x *ExtractedDocument) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ValidationResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"` // items | vat | dates | totals
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Severity      string                 `protobuf:"bytes,3,opt,name=severity,proto3" json:"severity,omitempty"` // error | warning
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidationResult) Reset() {
	*x = ValidationResult{}
	mi := &file_recon_v1_recon_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationResult) ProtoMessage() {}

func (x *ValidationResult) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationResult.ProtoReflect.Descriptor instead.
func (*ValidationResult) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{4}
}

func (x *ValidationResult) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ValidationResult) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ValidationResult) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

type ValidationSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PairId        string                 `protobuf:"bytes,1,opt,name=pair_id,json=pairId,proto3" json:"pair_id,omitempty"`
	ItemsStatus   string                 `protobuf:"bytes,2,opt,name=items_status,json=itemsStatus,proto3" json:"items_status,omitempty"`
	VatStatus     string                 `protobuf:"bytes,3,opt,name=vat_status,json=vatStatus,proto3" json:"vat_status,omitempty"`
	DatesStatus   string                 `protobuf:"bytes,4,opt,name=dates_status,json=datesStatus,proto3" json:"dates_status,omitempty"`
	TotalsStatus  string                 `protobuf:"bytes,5,opt,name=totals_status,json=totalsStatus,proto3" json:"totals_status,omitempty"`
	FinalStatus   string                 `protobuf:"bytes,6,opt,name=final_status,json=finalStatus,proto3" json:"final_status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidationSummary) Reset() {
	*x = ValidationSummary{}
	mi := &file_recon_v1_recon_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationSummary) ProtoMessage() {}

func (x *ValidationSummary) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationSummary.ProtoReflect.Descriptor instead.
func (*ValidationSummary) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{5}
}

func (x *ValidationSummary) GetPairId() string {
	if x != nil {
		return x.PairId
	}
	return ""
}

func (x *ValidationSummary) GetItemsStatus() string {
	if x != nil {
		return x.ItemsStatus
	}
	return ""
}

func (x *ValidationSummary) GetVatStatus() string {
	if x != nil {
		return x.VatStatus
	}
	return ""
}

func (x *ValidationSummary) GetDatesStatus() string {
	if x != nil {
		return x.DatesStatus
	}
	return ""
}

func (x *ValidationSummary) GetTotalsStatus() string {
	if x != nil {
		return x.TotalsStatus
	}
	return ""
}

func (x *ValidationSummary) GetFinalStatus() string {
	if x != nil {
		return x.FinalStatus
	}
	return ""
}

type Totals struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Subtotal      float64                `protobuf:"fixed64,1,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	VatTotal      float64                `protobuf:"fixed64,2,opt,name=vat_total,json=vatTotal,proto3" json:"vat_total,omitempty"`
	GrandTotal    float64                `protobuf:"fixed64,3,opt,name=grand_total,json=grandTotal,proto3" json:"grand_total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Totals) Reset() {
	*x = Totals{}
	mi := &file_recon_v1_recon_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Totals) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Totals) ProtoMessage() {}

func (x *Totals) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Totals.ProtoReflect.Descriptor instead.
func (*Totals) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{6}
}

func (x *Totals) GetSubtotal() float64 {
	if x != nil {
		return x.Subtotal
	}
	return 0
}

func (x *Totals) GetVatTotal() float64 {
	if x != nil {
		return x.VatTotal
	}
	return 0
}

func (x *Totals) GetGrandTotal() float64 {
	if x != nil {
		return x.GrandTotal
	}
	return 0
}

type Pair struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OrderId       string                 `protobuf:"bytes,2,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	InvoiceId     string                 `protobuf:"bytes,3,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Pair) Reset() {
	*x = Pair{}
	mi := &file_recon_v1_recon_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Pair) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Pair) ProtoMessage() {}

func (x *Pair) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Pair.ProtoReflect.Descriptor instead.
func (*Pair) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{7}
}

func (x *Pair) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Pair) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *Pair) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *Pair) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type PairView struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pair          *Pair                  `protobuf:"bytes,1,opt,name=pair,proto3" json:"pair,omitempty"`
	Order         *Document              `protobuf:"bytes,2,opt,name=order,proto3" json:"order,omitempty"`
	Invoice       *Document              `protobuf:"bytes,3,opt,name=invoice,proto3" json:"invoice,omitempty"`
	Validations   []*ValidationResult    `protobuf:"bytes,4,rep,name=validations,proto3" json:"validations,omitempty"`
	Summary       *ValidationSummary     `protobuf:"bytes,5,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PairView) Reset() {
	*x = PairView{}
	mi := &file_recon_v1_recon_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PairView) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PairView) ProtoMessage() {}

func (x *PairView) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PairView.ProtoReflect.Descriptor instead.
func (*PairView) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{8}
}

func (x *PairView) GetPair() *Pair {
	if x != nil {
		return x.Pair
	}
	return nil
}

func (x *PairView) GetOrder() *Document {
	if x != nil {
		return x.Order
	}
	return nil
}

func (x *PairView) GetInvoice() *Document {
	if x != nil {
		return x.Invoice
	}
	return nil
}

func (x *PairView) GetValidations() []*ValidationResult {
	if x != nil {
		return x.Validations
	}
	return nil
}

func (x *PairView) GetSummary() *ValidationSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type CreateDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"` // ORDER | INVOICE
	DocNumber     string                 `protobuf:"bytes,2,opt,name=doc_number,json=docNumber,proto3" json:"doc_number,omitempty"`
	DocDate       string                 `protobuf:"bytes,3,opt,name=doc_date,json=docDate,proto3" json:"doc_date,omitempty"`
	DueDate       string                 `protobuf:"bytes,4,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	Supplier      string                 `protobuf:"bytes,5,opt,name=supplier,proto3" json:"supplier,omitempty"`
	Currency      string                 `protobuf:"bytes,6,opt,name=currency,proto3" json:"currency,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,7,rep,name=items,proto3" json:"items,omitempty"`
	Files         []*FileRef             `protobuf:"bytes,8,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDocumentRequest) Reset() {
	*x = CreateDocumentRequest{}
	mi := &file_recon_v1_recon_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDocumentRequest) ProtoMessage() {}

func (x *CreateDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDocumentRequest.ProtoReflect.Descriptor instead.
func (*CreateDocumentRequest) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{9}
}

func (x *CreateDocumentRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *CreateDocumentRequest) GetDocNumber() string {
	if x != nil {
		return x.DocNumber
	}
	return ""
}

func (x *CreateDocumentRequest) GetDocDate() string {
	if x != nil {
		return x.DocDate
	}
	return ""
}

func (x *CreateDocumentRequest) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *CreateDocumentRequest) GetSupplier() string {
	if x != nil {
		return x.Supplier
	}
	return ""
}

func (x *CreateDocumentRequest) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *CreateDocumentRequest) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *CreateDocumentRequest) GetFiles() []*FileRef {
	if x != nil {
		return x.Files
	}
	return nil
}

type CreateDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDocumentResponse) Reset() {
	*x = CreateDocumentResponse{}
	mi := &file_recon_v1_recon_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDocumentResponse) ProtoMessage() {}

func (x *CreateDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDocumentResponse.ProtoReflect.Descriptor instead.
func (*CreateDocumentResponse) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{10}
}

func (x *CreateDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_recon_v1_recon_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{11}
}

func (x *ListDocumentsRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_recon_v1_recon_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{12}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type ExtractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Confidence    float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"` // 0..100
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractRequest) Reset() {
	*x = ExtractRequest{}
	mi := &file_recon_v1_recon_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractRequest) ProtoMessage() {}

func (x *ExtractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractRequest.ProtoReflect.Descriptor instead.
func (*ExtractRequest) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{13}
}

func (x *ExtractRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ExtractRequest) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type ExtractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *ExtractedDocument     `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractResponse) Reset() {
	*x = ExtractResponse{}
	mi := &file_recon_v1_recon_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractResponse) ProtoMessage() {}

func (x *ExtractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractResponse.ProtoReflect.Descriptor instead.
func (*ExtractResponse) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{14}
}

func (x *ExtractResponse) GetDocument() *ExtractedDocument {
	if x != nil {
		return x.Document
	}
	return nil
}

type ReconcilePairRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	InvoiceId     string                 `protobuf:"bytes,2,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReconcilePairRequest) Reset() {
	*x = ReconcilePairRequest{}
	mi := &file_recon_v1_recon_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReconcilePairRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReconcilePairRequest) ProtoMessage() {}

func (x *ReconcilePairRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReconcilePairRequest.ProtoReflect.Descriptor instead.
func (*ReconcilePairRequest) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{15}
}

func (x *ReconcilePairRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *ReconcilePairRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type ReconcilePairResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	View          *PairView              `protobuf:"bytes,1,opt,name=view,proto3" json:"view,omitempty"`
	OrderTotals   *Totals                `protobuf:"bytes,2,opt,name=order_totals,json=orderTotals,proto3" json:"order_totals,omitempty"`
	InvoiceTotals *Totals                `protobuf:"bytes,3,opt,name=invoice_totals,json=invoiceTotals,proto3" json:"invoice_totals,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReconcilePairResponse) Reset() {
	*x = ReconcilePairResponse{}
	mi := &file_recon_v1_recon_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReconcilePairResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReconcilePairResponse) ProtoMessage() {}

func (x *ReconcilePairResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReconcilePairResponse.ProtoReflect.Descriptor instead.
func (*ReconcilePairResponse) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{16}
}

func (x *ReconcilePairResponse) GetView() *PairView {
	if x != nil {
		return x.View
	}
	return nil
}

func (x *ReconcilePairResponse) GetOrderTotals() *Totals {
	if x != nil {
		return x.OrderTotals
	}
	return nil
}

func (x *ReconcilePairResponse) GetInvoiceTotals() *Totals {
	if x != nil {
		return x.InvoiceTotals
	}
	return nil
}

type ListPairsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPairsRequest) Reset() {
	*x = ListPairsRequest{}
	mi := &file_recon_v1_recon_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPairsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPairsRequest) ProtoMessage() {}

func (x *ListPairsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPairsRequest.ProtoReflect.Descriptor instead.
func (*ListPairsRequest) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{17}
}

type ListPairsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Views         []*PairView            `protobuf:"bytes,1,rep,name=views,proto3" json:"views,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPairsResponse) Reset() {
	*x = ListPairsResponse{}
	mi := &file_recon_v1_recon_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPairsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPairsResponse) ProtoMessage() {}

func (x *ListPairsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPairsResponse.ProtoReflect.Descriptor instead.
func (*ListPairsResponse) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{18}
}

func (x *ListPairsResponse) GetViews() []*PairView {
	if x != nil {
		return x.Views
	}
	return nil
}

type ExportReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PairId        string                 `protobuf:"bytes,1,opt,name=pair_id,json=pairId,proto3" json:"pair_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportRequest) Reset() {
	*x = ExportReportRequest{}
	mi := &file_recon_v1_recon_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportRequest) ProtoMessage() {}

func (x *ExportReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportRequest.ProtoReflect.Descriptor instead.
func (*ExportReportRequest) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{19}
}

func (x *ExportReportRequest) GetPairId() string {
	if x != nil {
		return x.PairId
	}
	return ""
}

type ExportReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportResponse) Reset() {
	*x = ExportReportResponse{}
	mi := &file_recon_v1_recon_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportResponse) ProtoMessage() {}

func (x *ExportReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_recon_v1_recon_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportResponse.ProtoReflect.Descriptor instead.
func (*ExportReportResponse) Descriptor() ([]byte, []int) {
	return file_recon_v1_recon_proto_rawDescGZIP(), []int{20}
}

func (x *ExportReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_recon_v1_recon_proto protoreflect.FileDescriptor

const file_recon_v1_recon_proto_rawDesc = "" +
	"\n" +
	"\x14recon/v1/recon.proto\x12\brecon.v1\"p\n" +
	"\bLineItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x10\n" +
	"\x03qty\x18\x02 \x01(\x01R\x03qty\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\x01R\tunitPrice\x12\x1f\n" +
	"\vvat_percent\x18\x04 \x01(\x01R\n" +
	"vatPercent\"\x97\x01\n" +
	"\aFileRef\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_type\x18\x03 \x01(\tR\bfileType\x12!\n" +
	"\fstorage_path\x18\x04 \x01(\tR\vstoragePath\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\"\xad\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12\x1d\n" +
	"\n" +
	"doc_number\x18\x03 \x01(\tR\tdocNumber\x12\x19\n" +
	"\bdoc_date\x18\x04 \x01(\tR\adocDate\x12\x19\n" +
	"\bdue_date\x18\x05 \x01(\tR\adueDate\x12\x1a\n" +
	"\bsupplier\x18\x06 \x01(\tR\bsupplier\x12\x1a\n" +
	"\bcurrency\x18\a \x01(\tR\bcurrency\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12(\n" +
	"\x05items\x18\t \x03(\v2\x12.recon.v1.LineItemR\x05items\x12'\n" +
	"\x05files\x18\n" +
	" \x03(\v2\x11.recon.v1.FileRefR\x05files\"\xe6\x01\n" +
	"\x11ExtractedDocument\x12\x1d\n" +
	"\n" +
	"doc_number\x18\x01 \x01(\tR\tdocNumber\x12\x1d\n" +
	"\n" +
	"issue_date\x18\x02 \x01(\tR\tissueDate\x12\x19\n" +
	"\bdue_date\x18\x03 \x01(\tR\adueDate\x12\x1a\n" +
	"\bsupplier\x18\x04 \x01(\tR\bsupplier\x12\x1a\n" +
	"\bcurrency\x18\x05 \x01(\tR\bcurrency\x12\x16\n" +
	"\x06locale\x18\x06 \x01(\tR\x06locale\x12(\n" +
	"\x05items\x18\a \x03(\v2\x12.recon.v1.LineItemR\x05items\"d\n" +
	"\x10ValidationResult\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12\x1a\n" +
	"\bseverity\x18\x03 \x01(\tR\bseverity\"\xd9\x01\n" +
	"\x11ValidationSummary\x12\x17\n" +
	"\apair_id\x18\x01 \x01(\tR\x06pairId\x12!\n" +
	"\fitems_status\x18\x02 \x01(\tR\vitemsStatus\x12\x1d\n" +
	"\n" +
	"vat_status\x18\x03 \x01(\tR\tvatStatus\x12!\n" +
	"\fdates_status\x18\x04 \x01(\tR\vdatesStatus\x12#\n" +
	"\rtotals_status\x18\x05 \x01(\tR\ftotalsStatus\x12!\n" +
	"\ffinal_status\x18\x06 \x01(\tR\vfinalStatus\"b\n" +
	"\x06Totals\x12\x1a\n" +
	"\bsubtotal\x18\x01 \x01(\x01R\bsubtotal\x12\x1b\n" +
	"\tvat_total\x18\x02 \x01(\x01R\bvatTotal\x12\x1f\n" +
	"\vgrand_total\x18\x03 \x01(\x01R\n" +
	"grandTotal\"o\n" +
	"\x04Pair\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\border_id\x18\x02 \x01(\tR\aorderId\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x03 \x01(\tR\tinvoiceId\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\"\xfb\x01\n" +
	"\bPairView\x12\"\n" +
	"\x04pair\x18\x01 \x01(\v2\x0e.recon.v1.PairR\x04pair\x12(\n" +
	"\x05order\x18\x02 \x01(\v2\x12.recon.v1.DocumentR\x05order\x12,\n" +
	"\ainvoice\x18\x03 \x01(\v2\x12.recon.v1.DocumentR\ainvoice\x12<\n" +
	"\vvalidations\x18\x04 \x03(\v2\x1a.recon.v1.ValidationResultR\vvalidations\x125\n" +
	"\asummary\x18\x05 \x01(\v2\x1b.recon.v1.ValidationSummaryR\asummary\"\x8b\x02\n" +
	"\x15CreateDocumentRequest\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x1d\n" +
	"\n" +
	"doc_number\x18\x02 \x01(\tR\tdocNumber\x12\x19\n" +
	"\bdoc_date\x18\x03 \x01(\tR\adocDate\x12\x19\n" +
	"\bdue_date\x18\x04 \x01(\tR\adueDate\x12\x1a\n" +
	"\bsupplier\x18\x05 \x01(\tR\bsupplier\x12\x1a\n" +
	"\bcurrency\x18\x06 \x01(\tR\bcurrency\x12(\n" +
	"\x05items\x18\a \x03(\v2\x12.recon.v1.LineItemR\x05items\x12'\n" +
	"\x05files\x18\b \x03(\v2\x11.recon.v1.FileRefR\x05files\"H\n" +
	"\x16CreateDocumentResponse\x12.\n" +
	"\bdocument\x18\x01 \x01(\v2\x12.recon.v1.DocumentR\bdocument\"*\n" +
	"\x14ListDocumentsRequest\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\"I\n" +
	"\x15ListDocumentsResponse\x120\n" +
	"\tdocuments\x18\x01 \x03(\v2\x12.recon.v1.DocumentR\tdocuments\"D\n" +
	"\x0eExtractRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\"J\n" +
	"\x0fExtractResponse\x127\n" +
	"\bdocument\x18\x01 \x01(\v2\x1b.recon.v1.ExtractedDocumentR\bdocument\"P\n" +
	"\x14ReconcilePairRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x02 \x01(\tR\tinvoiceId\"\xad\x01\n" +
	"\x15ReconcilePairResponse\x12&\n" +
	"\x04view\x18\x01 \x01(\v2\x12.recon.v1.PairViewR\x04view\x123\n" +
	"\forder_totals\x18\x02 \x01(\v2\x10.recon.v1.TotalsR\vorderTotals\x127\n" +
	"\x0einvoice_totals\x18\x03 \x01(\v2\x10.recon.v1.TotalsR\rinvoiceTotals\"\x12\n" +
	"\x10ListPairsRequest\"=\n" +
	"\x11ListPairsResponse\x12(\n" +
	"\x05views\x18\x01 \x03(\v2\x12.recon.v1.PairViewR\x05views\".\n" +
	"\x13ExportReportRequest\x12\x17\n" +
	"\apair_id\x18\x01 \x01(\tR\x06pairId\"*\n" +
	"\x14ExportReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xb9\x01\n" +
	"\x10DocumentsService\x12S\n" +
	"\x0eCreateDocument\x12\x1f.recon.v1.CreateDocumentRequest\x1a .recon.v1.CreateDocumentResponse\x12P\n" +
	"\rListDocuments\x12\x1e.recon.v1.ListDocumentsRequest\x1a\x1f.recon.v1.ListDocumentsResponse2S\n" +
	"\x11ExtractionService\x12>\n" +
	"\aExtract\x12\x18.recon.v1.ExtractRequest\x1a\x19.recon.v1.ExtractResponse2\xf9\x01\n" +
	"\x10ReconcileService\x12P\n" +
	"\rReconcilePair\x12\x1e.recon.v1.ReconcilePairRequest\x1a\x1f.recon.v1.ReconcilePairResponse\x12D\n" +
	"\tListPairs\x12\x1a.recon.v1.ListPairsRequest\x1a\x1b.recon.v1.ListPairsResponse\x12M\n" +
	"\fExportReport\x12\x1d.recon.v1.ExportReportRequest\x1a\x1e.recon.v1.ExportReportResponseB@Z>github.com/petarmilev/invoice-recon/gen/proto/recon/v1;reconv1b\x06proto3"

var (
	file_recon_v1_recon_proto_rawDescOnce sync.Once
	file_recon_v1_recon_proto_rawDescData []byte
)

func file_recon_v1_recon_proto_rawDescGZIP() []byte {
	file_recon_v1_recon_proto_rawDescOnce.Do(func() {
		file_recon_v1_recon_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_recon_v1_recon_proto_rawDesc), len(file_recon_v1_recon_proto_rawDesc)))
	})
	return file_recon_v1_recon_proto_rawDescData
}

var file_recon_v1_recon_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_recon_v1_recon_proto_goTypes = []any{
	(*LineItem)(nil),               // 0: recon.v1.LineItem
	(*FileRef)(nil),                // 1: recon.v1.FileRef
	(*Document)(nil),               // 2: recon.v1.Document
	(*ExtractedDocument)(nil),      // 3: recon.v1.ExtractedDocument
	(*ValidationResult)(nil),       // 4: recon.v1.ValidationResult
	(*ValidationSummary)(nil),      // 5: recon.v1.ValidationSummary
	(*Totals)(nil),                 // 6: recon.v1.Totals
	(*Pair)(nil),                   // 7: recon.v1.Pair
	(*PairView)(nil),               // 8: recon.v1.PairView
	(*CreateDocumentRequest)(nil),  // 9: recon.v1.CreateDocumentRequest
	(*CreateDocumentResponse)(nil), // 10: recon.v1.CreateDocumentResponse
	(*ListDocumentsRequest)(nil),   // 11: recon.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),  // 12: recon.v1.ListDocumentsResponse
	(*ExtractRequest)(nil),         // 13: recon.v1.ExtractRequest
	(*ExtractResponse)(nil),        // 14: recon.v1.ExtractResponse
	(*ReconcilePairRequest)(nil),   // 15: recon.v1.ReconcilePairRequest
	(*ReconcilePairResponse)(nil),  // 16: recon.v1.ReconcilePairResponse
	(*ListPairsRequest)(nil),       // 17: recon.v1.ListPairsRequest
	(*ListPairsResponse)(nil),      // 18: recon.v1.ListPairsResponse
	(*ExportReportRequest)(nil),    // 19: recon.v1.ExportReportRequest
	(*ExportReportResponse)(nil),   // 20: recon.v1.ExportReportResponse
}
var file_recon_v1_recon_proto_depIdxs = []int32{
	0,  // 0: recon.v1.Document.items:type_name -> recon.v1.LineItem
	1,  // 1: recon.v1.Document.files:type_name -> recon.v1.FileRef
	0,  // 2: recon.v1.ExtractedDocument.items:type_name -> recon.v1.LineItem
	7,  // 3: recon.v1.PairView.pair:type_name -> recon.v1.Pair
	2,  // 4: recon.v1.PairView.order:type_name -> recon.v1.Document
	2,  // 5: recon.v1.PairView.invoice:type_name -> recon.v1.Document
	4,  // 6: recon.v1.PairView.validations:type_name -> recon.v1.ValidationResult
	5,  // 7: recon.v1.PairView.summary:type_name -> recon.v1.ValidationSummary
	0,  // 8: recon.v1.CreateDocumentRequest.items:type_name -> recon.v1.LineItem
	1,  // 9: recon.v1.CreateDocumentRequest.files:type_name -> recon.v1.FileRef
	2,  // 10: recon.v1.CreateDocumentResponse.document:type_name -> recon.v1.Document
	2,  // 11: recon.v1.ListDocumentsResponse.documents:type_name -> recon.v1.Document
	3,  // 12: recon.v1.ExtractResponse.document:type_name -> recon.v1.ExtractedDocument
	8,  // 13: recon.v1.ReconcilePairResponse.view:type_name -> recon.v1.PairView
	6,  // 14: recon.v1.ReconcilePairResponse.order_totals:type_name -> recon.v1.Totals
	6,  // 15: recon.v1.ReconcilePairResponse.invoice_totals:type_name -> recon.v1.Totals
	8,  // 16: recon.v1.ListPairsResponse.views:type_name -> recon.v1.PairView
	9,  // 17: recon.v1.DocumentsService.CreateDocument:input_type -> recon.v1.CreateDocumentRequest
	11, // 18: recon.v1.DocumentsService.ListDocuments:input_type -> recon.v1.ListDocumentsRequest
	13, // 19: recon.v1.ExtractionService.Extract:input_type -> recon.v1.ExtractRequest
	15, // 20: recon.v1.ReconcileService.ReconcilePair:input_type -> recon.v1.ReconcilePairRequest
	17, // 21: recon.v1.ReconcileService.ListPairs:input_type -> recon.v1.ListPairsRequest
	19, // 22: recon.v1.ReconcileService.ExportReport:input_type -> recon.v1.ExportReportRequest
	10, // 23: recon.v1.DocumentsService.CreateDocument:output_type -> recon.v1.CreateDocumentResponse
	12, // 24: recon.v1.DocumentsService.ListDocuments:output_type -> recon.v1.ListDocumentsResponse
	14, // 25: recon.v1.ExtractionService.Extract:output_type -> recon.v1.ExtractResponse
	16, // 26: recon.v1.ReconcileService.ReconcilePair:output_type -> recon.v1.ReconcilePairResponse
	18, // 27: recon.v1.ReconcileService.ListPairs:output_type -> recon.v1.ListPairsResponse
	20, // 28: recon.v1.ReconcileService.ExportReport:output_type -> recon.v1.ExportReportResponse
	23, // [23:29] is the sub-list for method output_type
	17, // [17:23] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_recon_v1_recon_proto_init() }
func file_recon_v1_recon_proto_init() {
	if File_recon_v1_recon_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_recon_v1_recon_proto_rawDesc), len(file_recon_v1_recon_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_recon_v1_recon_proto_goTypes,
		DependencyIndexes: file_recon_v1_recon_proto_depIdxs,
		MessageInfos:      file_recon_v1_recon_proto_msgTypes,
	}.Build()
	File_recon_v1_recon_proto = out.File
	file_recon_v1_recon_proto_goTypes = nil
	file_recon_v1_recon_proto_depIdxs = nil
}
