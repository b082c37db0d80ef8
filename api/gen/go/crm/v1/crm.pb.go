// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: crm/v1/crm.proto

package crmv1

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

type WelcomeRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// Interval in days measured back from created_at.
	Interval      uint32   `protobuf:"varint,2,opt,name=interval,proto3" json:"interval,omitempty"`
	ContentIds    []uint32 `protobuf:"varint,3,rep,packed,name=content_ids,json=contentIds,proto3" json:"content_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WelcomeRequest) Reset() {
	*x = WelcomeRequest{}
	mi := &file_crm_v1_crm_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WelcomeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WelcomeRequest) ProtoMessage() {}

func (x *WelcomeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_crm_v1_crm_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WelcomeRequest.ProtoReflect.Descriptor instead.
func (*WelcomeRequest) Descriptor() ([]byte, []int) {
	return file_crm_v1_crm_proto_rawDescGZIP(), []int{0}
}

func (x *WelcomeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *WelcomeRequest) GetInterval() uint32 {
	if x != nil {
		return x.Interval
	}
	return 0
}

func (x *WelcomeRequest) GetContentIds() []uint32 {
	if x != nil {
		return x.ContentIds
	}
	return nil
}

type WelcomeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WelcomeResponse) Reset() {
	*x = WelcomeResponse{}
	mi := &file_crm_v1_crm_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WelcomeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WelcomeResponse) ProtoMessage() {}

func (x *WelcomeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_crm_v1_crm_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WelcomeResponse.ProtoReflect.Descriptor instead.
func (*WelcomeResponse) Descriptor() ([]byte, []int) {
	return file_crm_v1_crm_proto_rawDescGZIP(), []int{1}
}

func (x *WelcomeResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RecallRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// Interval in days measured back from last_visited_at.
	LastVisitInterval uint32   `protobuf:"varint,2,opt,name=last_visit_interval,json=lastVisitInterval,proto3" json:"last_visit_interval,omitempty"`
	ContentIds        []uint32 `protobuf:"varint,3,rep,packed,name=content_ids,json=contentIds,proto3" json:"content_ids,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *RecallRequest) Reset() {
	*x = RecallRequest{}
	mi := &file_crm_v1_crm_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecallRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecallRequest) ProtoMessage() {}

func (x *RecallRequest) ProtoReflect() protoreflect.Message {
	mi := &file_crm_v1_crm_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecallRequest.ProtoReflect.Descriptor instead.
func (*RecallRequest) Descriptor() ([]byte, []int) {
	return file_crm_v1_crm_proto_rawDescGZIP(), []int{2}
}

func (x *RecallRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RecallRequest) GetLastVisitInterval() uint32 {
	if x != nil {
		return x.LastVisitInterval
	}
	return 0
}

func (x *RecallRequest) GetContentIds() []uint32 {
	if x != nil {
		return x.ContentIds
	}
	return nil
}

type RecallResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecallResponse) Reset() {
	*x = RecallResponse{}
	mi := &file_crm_v1_crm_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecallResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecallResponse) ProtoMessage() {}

func (x *RecallResponse) ProtoReflect() protoreflect.Message {
	mi := &file_crm_v1_crm_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecallResponse.ProtoReflect.Descriptor instead.
func (*RecallResponse) Descriptor() ([]byte, []int) {
	return file_crm_v1_crm_proto_rawDescGZIP(), []int{3}
}

func (x *RecallResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RemindRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// Interval in days measured back from last_watched_at.
	LastVisitInterval uint32 `protobuf:"varint,2,opt,name=last_visit_interval,json=lastVisitInterval,proto3" json:"last_visit_interval,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *RemindRequest) Reset() {
	*x = RemindRequest{}
	mi := &file_crm_v1_crm_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemindRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemindRequest) ProtoMessage() {}

func (x *RemindRequest) ProtoReflect() protoreflect.Message {
	mi := &file_crm_v1_crm_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemindRequest.ProtoReflect.Descriptor instead.
func (*RemindRequest) Descriptor() ([]byte, []int) {
	return file_crm_v1_crm_proto_rawDescGZIP(), []int{4}
}

func (x *RemindRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RemindRequest) GetLastVisitInterval() uint32 {
	if x != nil {
		return x.LastVisitInterval
	}
	return 0
}

type RemindResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemindResponse) Reset() {
	*x = RemindResponse{}
	mi := &file_crm_v1_crm_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemindResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemindResponse) ProtoMessage() {}

func (x *RemindResponse) ProtoReflect() protoreflect.Message {
	mi := &file_crm_v1_crm_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemindResponse.ProtoReflect.Descriptor instead.
func (*RemindResponse) Descriptor() ([]byte, []int) {
	return file_crm_v1_crm_proto_rawDescGZIP(), []int{5}
}

func (x *RemindResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

var File_crm_v1_crm_proto protoreflect.FileDescriptor

const file_crm_v1_crm_proto_rawDesc = "" +
	"\n" +
	"\x10crm/v1/crm.proto\x12\x06crm.v1\"]\n" +
	"\x0eWelcomeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\binterval\x18\x02 \x01(\rR\binterval\x12\x1f\n" +
	"\vcontent_ids\x18\x03 \x03(\rR\n" +
	"contentIds\"!\n" +
	"\x0fWelcomeResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"p\n" +
	"\rRecallRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12.\n" +
	"\x13last_visit_interval\x18\x02 \x01(\rR\x11lastVisitInterval\x12\x1f\n" +
	"\vcontent_ids\x18\x03 \x03(\rR\n" +
	"contentIds\" \n" +
	"\x0eRecallResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"O\n" +
	"\rRemindRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12.\n" +
	"\x13last_visit_interval\x18\x02 \x01(\rR\x11lastVisitInterval\" \n" +
	"\x0eRemindResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id2\xba\x01\n" +
	"\n" +
	"CrmService\x12:\n" +
	"\aWelcome\x12\x16.crm.v1.WelcomeRequest\x1a\x17.crm.v1.WelcomeResponse\x127\n" +
	"\x06Recall\x12\x15.crm.v1.RecallRequest\x1a\x16.crm.v1.RecallResponse\x127\n" +
	"\x06Remind\x12\x15.crm.v1.RemindRequest\x1a\x16.crm.v1.RemindResponseB2Z0github.com/kailanyue/crm/api/gen/go/crm/v1;crmv1b\x06proto3"

var (
	file_crm_v1_crm_proto_rawDescOnce sync.Once
	file_crm_v1_crm_proto_rawDescData []byte
)

func file_crm_v1_crm_proto_rawDescGZIP() []byte {
	file_crm_v1_crm_proto_rawDescOnce.Do(func() {
		file_crm_v1_crm_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_crm_v1_crm_proto_rawDesc), len(file_crm_v1_crm_proto_rawDesc)))
	})
	return file_crm_v1_crm_proto_rawDescData
}

var file_crm_v1_crm_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_crm_v1_crm_proto_goTypes = []any{
	(*WelcomeRequest)(nil),  // 0: crm.v1.WelcomeRequest
	(*WelcomeResponse)(nil), // 1: crm.v1.WelcomeResponse
	(*RecallRequest)(nil),   // 2: crm.v1.RecallRequest
	(*RecallResponse)(nil),  // 3: crm.v1.RecallResponse
	(*RemindRequest)(nil),   // 4: crm.v1.RemindRequest
	(*RemindResponse)(nil),  // 5: crm.v1.RemindResponse
}
var file_crm_v1_crm_proto_depIdxs = []int32{
	0, // 0: crm.v1.CrmService.Welcome:input_type -> crm.v1.WelcomeRequest
	2, // 1: crm.v1.CrmService.Recall:input_type -> crm.v1.RecallRequest
	4, // 2: crm.v1.CrmService.Remind:input_type -> crm.v1.RemindRequest
	1, // 3: crm.v1.CrmService.Welcome:output_type -> crm.v1.WelcomeResponse
	3, // 4: crm.v1.CrmService.Recall:output_type -> crm.v1.RecallResponse
	5, // 5: crm.v1.CrmService.Remind:output_type -> crm.v1.RemindResponse
	3, // [3:6] is the sub-list for method output_type
	0, // [0:3] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_crm_v1_crm_proto_init() }
func file_crm_v1_crm_proto_init() {
	if File_crm_v1_crm_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_crm_v1_crm_proto_rawDesc), len(file_crm_v1_crm_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_crm_v1_crm_proto_goTypes,
		DependencyIndexes: file_crm_v1_crm_proto_depIdxs,
		MessageInfos:      file_crm_v1_crm_proto_msgTypes,
	}.Build()
	File_crm_v1_crm_proto = out.File
	file_crm_v1_crm_proto_goTypes = nil
	file_crm_v1_crm_proto_depIdxs = nil
}
