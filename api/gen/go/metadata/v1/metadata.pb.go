// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: metadata/v1/metadata.proto

package metadatav1

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

type MaterializeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ids           []uint32               `protobuf:"varint,1,rep,packed,name=ids,proto3" json:"ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MaterializeRequest) Reset() {
	*x = MaterializeRequest{}
	mi := &file_metadata_v1_metadata_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MaterializeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MaterializeRequest) ProtoMessage() {}

func (x *MaterializeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_metadata_v1_metadata_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MaterializeRequest.ProtoReflect.Descriptor instead.
func (*MaterializeRequest) Descriptor() ([]byte, []int) {
	return file_metadata_v1_metadata_proto_rawDescGZIP(), []int{0}
}

func (x *MaterializeRequest) GetIds() []uint32 {
	if x != nil {
		return x.Ids
	}
	return nil
}

type Content struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            uint32                 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Authors       []string               `protobuf:"bytes,4,rep,name=authors,proto3" json:"authors,omitempty"`
	Url           string                 `protobuf:"bytes,5,opt,name=url,proto3" json:"url,omitempty"`
	Image         string                 `protobuf:"bytes,6,opt,name=image,proto3" json:"image,omitempty"`
	Views         uint64                 `protobuf:"varint,7,opt,name=views,proto3" json:"views,omitempty"`
	Likes         uint64                 `protobuf:"varint,8,opt,name=likes,proto3" json:"likes,omitempty"`
	PublishedAt   *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=published_at,json=publishedAt,proto3" json:"published_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Content) Reset() {
	*x = Content{}
	mi := &file_metadata_v1_metadata_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Content) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Content) ProtoMessage() {}

func (x *Content) ProtoReflect() protoreflect.Message {
	mi := &file_metadata_v1_metadata_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Content.ProtoReflect.Descriptor instead.
func (*Content) Descriptor() ([]byte, []int) {
	return file_metadata_v1_metadata_proto_rawDescGZIP(), []int{1}
}

func (x *Content) GetId() uint32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Content) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Content) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Content) GetAuthors() []string {
	if x != nil {
		return x.Authors
	}
	return nil
}

func (x *Content) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *Content) GetImage() string {
	if x != nil {
		return x.Image
	}
	return ""
}

func (x *Content) GetViews() uint64 {
	if x != nil {
		return x.Views
	}
	return 0
}

func (x *Content) GetLikes() uint64 {
	if x != nil {
		return x.Likes
	}
	return 0
}

func (x *Content) GetPublishedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.PublishedAt
	}
	return nil
}

var File_metadata_v1_metadata_proto protoreflect.FileDescriptor

const file_metadata_v1_metadata_proto_rawDesc = "" +
	"\n" +
	"\x1ametadata/v1/metadata.proto\x12\vmetadata.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"&\n" +
	"\x12MaterializeRequest\x12\x10\n" +
	"\x03ids\x18\x01 \x03(\rR\x03ids\"\xfc\x01\n" +
	"\aContent\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\rR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x18\n" +
	"\aauthors\x18\x04 \x03(\tR\aauthors\x12\x10\n" +
	"\x03url\x18\x05 \x01(\tR\x03url\x12\x14\n" +
	"\x05image\x18\x06 \x01(\tR\x05image\x12\x14\n" +
	"\x05views\x18\a \x01(\x04R\x05views\x12\x14\n" +
	"\x05likes\x18\b \x01(\x04R\x05likes\x12=\n" +
	"\fpublished_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\vpublishedAt2Y\n" +
	"\x0fMetadataService\x12F\n" +
	"\vMaterialize\x12\x1f.metadata.v1.MaterializeRequest\x1a\x14.metadata.v1.Content0\x01B<Z:github.com/kailanyue/crm/api/gen/go/metadata/v1;metadatav1b\x06proto3"

var (
	file_metadata_v1_metadata_proto_rawDescOnce sync.Once
	file_metadata_v1_metadata_proto_rawDescData []byte
)

func file_metadata_v1_metadata_proto_rawDescGZIP() []byte {
	file_metadata_v1_metadata_proto_rawDescOnce.Do(func() {
		file_metadata_v1_metadata_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_metadata_v1_metadata_proto_rawDesc), len(file_metadata_v1_metadata_proto_rawDesc)))
	})
	return file_metadata_v1_metadata_proto_rawDescData
}

var file_metadata_v1_metadata_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_metadata_v1_metadata_proto_goTypes = []any{
	(*MaterializeRequest)(nil),    // 0: metadata.v1.MaterializeRequest
	(*Content)(nil),               // 1: metadata.v1.Content
	(*timestamppb.Timestamp)(nil), // 2: google.protobuf.Timestamp
}
var file_metadata_v1_metadata_proto_depIdxs = []int32{
	2, // 0: metadata.v1.Content.published_at:type_name -> google.protobuf.Timestamp
	0, // 1: metadata.v1.MetadataService.Materialize:input_type -> metadata.v1.MaterializeRequest
	1, // 2: metadata.v1.MetadataService.Materialize:output_type -> metadata.v1.Content
	2, // [2:3] is the sub-list for method output_type
	1, // [1:2] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_metadata_v1_metadata_proto_init() }
func file_metadata_v1_metadata_proto_init() {
	if File_metadata_v1_metadata_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_metadata_v1_metadata_proto_rawDesc), len(file_metadata_v1_metadata_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_metadata_v1_metadata_proto_goTypes,
		DependencyIndexes: file_metadata_v1_metadata_proto_depIdxs,
		MessageInfos:      file_metadata_v1_metadata_proto_msgTypes,
	}.Build()
	File_metadata_v1_metadata_proto = out.File
	file_metadata_v1_metadata_proto_goTypes = nil
	file_metadata_v1_metadata_proto_depIdxs = nil
}
