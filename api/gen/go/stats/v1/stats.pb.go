// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: stats/v1/stats.proto

package statsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type QueryRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Named time-range constraints, keyed by statistics field name.
	// An absent key leaves that field unconstrained.
	Timestamps map[string]*TimeQuery `protobuf:"bytes,1,rep,name=timestamps,proto3" json:"timestamps,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	// Named id-membership constraints, keyed by statistics field name.
	// An empty id list leaves that field unconstrained.
	Ids           map[string]*IdQuery `protobuf:"bytes,2,rep,name=ids,proto3" json:"ids,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QueryRequest) Reset() {
	*x = QueryRequest{}
	mi := &file_stats_v1_stats_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueryRequest) ProtoMessage() {}

func (x *QueryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueryRequest.ProtoReflect.Descriptor instead.
func (*QueryRequest) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{0}
}

func (x *QueryRequest) GetTimestamps() map[string]*TimeQuery {
	if x != nil {
		return x.Timestamps
	}
	return nil
}

func (x *QueryRequest) GetIds() map[string]*IdQuery {
	if x != nil {
		return x.Ids
	}
	return nil
}

type TimeQuery struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Inclusive lower bound; absent means open-ended.
	Lower *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=lower,proto3" json:"lower,omitempty"`
	// Inclusive upper bound; absent means open-ended.
	Upper         *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=upper,proto3" json:"upper,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TimeQuery) Reset() {
	*x = TimeQuery{}
	mi := &file_stats_v1_stats_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TimeQuery) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TimeQuery) ProtoMessage() {}

func (x *TimeQuery) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TimeQuery.ProtoReflect.Descriptor instead.
func (*TimeQuery) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{1}
}

func (x *TimeQuery) GetLower() *timestamppb.Timestamp {
	if x != nil {
		return x.Lower
	}
	return nil
}

func (x *TimeQuery) GetUpper() *timestamppb.Timestamp {
	if x != nil {
		return x.Upper
	}
	return nil
}

type IdQuery struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ids           []uint32               `protobuf:"varint,1,rep,packed,name=ids,proto3" json:"ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IdQuery) Reset() {
	*x = IdQuery{}
	mi := &file_stats_v1_stats_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IdQuery) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IdQuery) ProtoMessage() {}

func (x *IdQuery) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IdQuery.ProtoReflect.Descriptor instead.
func (*IdQuery) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{2}
}

func (x *IdQuery) GetIds() []uint32 {
	if x != nil {
		return x.Ids
	}
	return nil
}

type RawQueryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filter        string                 `protobuf:"bytes,1,opt,name=filter,proto3" json:"filter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RawQueryRequest) Reset() {
	*x = RawQueryRequest{}
	mi := &file_stats_v1_stats_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RawQueryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RawQueryRequest) ProtoMessage() {}

func (x *RawQueryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RawQueryRequest.ProtoReflect.Descriptor instead.
func (*RawQueryRequest) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{3}
}

func (x *RawQueryRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

type User struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Email                 string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Name                  string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	ViewedButNotStarted   []uint32               `protobuf:"varint,3,rep,packed,name=viewed_but_not_started,json=viewedButNotStarted,proto3" json:"viewed_but_not_started,omitempty"`
	StartedButNotFinished []uint32               `protobuf:"varint,4,rep,packed,name=started_but_not_finished,json=startedButNotFinished,proto3" json:"started_but_not_finished,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_stats_v1_stats_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{4}
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *User) GetViewedButNotStarted() []uint32 {
	if x != nil {
		return x.ViewedButNotStarted
	}
	return nil
}

func (x *User) GetStartedButNotFinished() []uint32 {
	if x != nil {
		return x.StartedButNotFinished
	}
	return nil
}

var File_stats_v1_stats_proto protoreflect.FileDescriptor

const file_stats_v1_stats_proto_rawDesc = "" +
	"\n" +
	"\x14stats/v1/stats.proto\x12\bstats.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xa8\x02\n" +
	"\fQueryRequest\x12F\n" +
	"\n" +
	"timestamps\x18\x01 \x03(\v2&.stats.v1.QueryRequest.TimestampsEntryR\n" +
	"timestamps\x121\n" +
	"\x03ids\x18\x02 \x03(\v2\x1f.stats.v1.QueryRequest.IdsEntryR\x03ids\x1aR\n" +
	"\x0fTimestampsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12)\n" +
	"\x05value\x18\x02 \x01(\v2\x13.stats.v1.TimeQueryR\x05value:\x028\x01\x1aI\n" +
	"\bIdsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12'\n" +
	"\x05value\x18\x02 \x01(\v2\x11.stats.v1.IdQueryR\x05value:\x028\x01\"o\n" +
	"\tTimeQuery\x120\n" +
	"\x05lower\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x05lower\x120\n" +
	"\x05upper\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x05upper\"\x1b\n" +
	"\aIdQuery\x12\x10\n" +
	"\x03ids\x18\x01 \x03(\rR\x03ids\")\n" +
	"\x0fRawQueryRequest\x12\x16\n" +
	"\x06filter\x18\x01 \x01(\tR\x06filter\"\x9e\x01\n" +
	"\x04User\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x123\n" +
	"\x16viewed_but_not_started\x18\x03 \x03(\rR\x13viewedButNotStarted\x127\n" +
	"\x18started_but_not_finished\x18\x04 \x03(\rR\x15startedButNotFinished2~\n" +
	"\x10UserStatsService\x121\n" +
	"\x05Query\x12\x16.stats.v1.QueryRequest\x1a\x0e.stats.v1.User0\x01\x127\n" +
	"\bRawQuery\x12\x19.stats.v1.RawQueryRequest\x1a\x0e.stats.v1.User0\x01B6Z4github.com/kailanyue/crm/api/gen/go/stats/v1;statsv1b\x06proto3"

var (
	file_stats_v1_stats_proto_rawDescOnce sync.Once
	file_stats_v1_stats_proto_rawDescData []byte
)

func file_stats_v1_stats_proto_rawDescGZIP() []byte {
	file_stats_v1_stats_proto_rawDescOnce.Do(func() {
		file_stats_v1_stats_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_stats_v1_stats_proto_rawDesc), len(file_stats_v1_stats_proto_rawDesc)))
	})
	return file_stats_v1_stats_proto_rawDescData
}

var file_stats_v1_stats_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_stats_v1_stats_proto_goTypes = []any{
	(*QueryRequest)(nil),          // 0: stats.v1.QueryRequest
	(*TimeQuery)(nil),             // 1: stats.v1.TimeQuery
	(*IdQuery)(nil),               // 2: stats.v1.IdQuery
	(*RawQueryRequest)(nil),       // 3: stats.v1.RawQueryRequest
	(*User)(nil),                  // 4: stats.v1.User
	nil,                           // 5: stats.v1.QueryRequest.TimestampsEntry
	nil,                           // 6: stats.v1.QueryRequest.IdsEntry
	(*timestamppb.Timestamp)(nil), // 7: google.protobuf.Timestamp
}
var file_stats_v1_stats_proto_depIdxs = []int32{
	5, // 0: stats.v1.QueryRequest.timestamps:type_name -> stats.v1.QueryRequest.TimestampsEntry
	6, // 1: stats.v1.QueryRequest.ids:type_name -> stats.v1.QueryRequest.IdsEntry
	7, // 2: stats.v1.TimeQuery.lower:type_name -> google.protobuf.Timestamp
	7, // 3: stats.v1.TimeQuery.upper:type_name -> google.protobuf.Timestamp
	1, // 4: stats.v1.QueryRequest.TimestampsEntry.value:type_name -> stats.v1.TimeQuery
	2, // 5: stats.v1.QueryRequest.IdsEntry.value:type_name -> stats.v1.IdQuery
	0, // 6: stats.v1.UserStatsService.Query:input_type -> stats.v1.QueryRequest
	3, // 7: stats.v1.UserStatsService.RawQuery:input_type -> stats.v1.RawQueryRequest
	4, // 8: stats.v1.UserStatsService.Query:output_type -> stats.v1.User
	4, // 9: stats.v1.UserStatsService.RawQuery:output_type -> stats.v1.User
	8, // [8:10] is the sub-list for method output_type
	6, // [6:8] is the sub-list for method input_type
	6, // [6:6] is the sub-list for extension type_name
	6, // [6:6] is the sub-list for extension extendee
	0, // [0:6] is the sub-list for field type_name
}

func init() { file_stats_v1_stats_proto_init() }
func file_stats_v1_stats_proto_init() {
	if File_stats_v1_stats_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_stats_v1_stats_proto_rawDesc), len(file_stats_v1_stats_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_stats_v1_stats_proto_goTypes,
		DependencyIndexes: file_stats_v1_stats_proto_depIdxs,
		MessageInfos:      file_stats_v1_stats_proto_msgTypes,
	}.Build()
	File_stats_v1_stats_proto = out.File
	file_stats_v1_stats_proto_goTypes = nil
	file_stats_v1_stats_proto_depIdxs = nil
}
