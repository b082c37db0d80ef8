// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: notification/v1/notification.proto

package notificationv1

import (
	v1 "github.com/kailanyue/crm/api/gen/go/metadata/v1"
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

type SendRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Campaign label, e.g. "Welcome".
	Campaign   string   `protobuf:"bytes,1,opt,name=campaign,proto3" json:"campaign,omitempty"`
	Sender     string   `protobuf:"bytes,2,opt,name=sender,proto3" json:"sender,omitempty"`
	Recipients []string `protobuf:"bytes,3,rep,name=recipients,proto3" json:"recipients,omitempty"`
	// Types that are valid to be assigned to Payload:
	//
	//	*SendRequest_Contents
	//	*SendRequest_Remind
	Payload       isSendRequest_Payload `protobuf_oneof:"payload"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendRequest) Reset() {
	*x = SendRequest{}
	mi := &file_notification_v1_notification_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendRequest) ProtoMessage() {}

func (x *SendRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendRequest.ProtoReflect.Descriptor instead.
func (*SendRequest) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{0}
}

func (x *SendRequest) GetCampaign() string {
	if x != nil {
		return x.Campaign
	}
	return ""
}

func (x *SendRequest) GetSender() string {
	if x != nil {
		return x.Sender
	}
	return ""
}

func (x *SendRequest) GetRecipients() []string {
	if x != nil {
		return x.Recipients
	}
	return nil
}

func (x *SendRequest) GetPayload() isSendRequest_Payload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *SendRequest) GetContents() *ContentPayload {
	if x != nil {
		if x, ok := x.Payload.(*SendRequest_Contents); ok {
			return x.Contents
		}
	}
	return nil
}

func (x *SendRequest) GetRemind() *RemindPayload {
	if x != nil {
		if x, ok := x.Payload.(*SendRequest_Remind); ok {
			return x.Remind
		}
	}
	return nil
}

type isSendRequest_Payload interface {
	isSendRequest_Payload()
}

type SendRequest_Contents struct {
	Contents *ContentPayload `protobuf:"bytes,4,opt,name=contents,proto3,oneof"`
}

type SendRequest_Remind struct {
	Remind *RemindPayload `protobuf:"bytes,5,opt,name=remind,proto3,oneof"`
}

func (*SendRequest_Contents) isSendRequest_Payload() {}

func (*SendRequest_Remind) isSendRequest_Payload() {}

// ContentPayload carries the shared content snapshot for welcome/recall sends.
type ContentPayload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contents      []*v1.Content          `protobuf:"bytes,1,rep,name=contents,proto3" json:"contents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ContentPayload) Reset() {
	*x = ContentPayload{}
	mi := &file_notification_v1_notification_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContentPayload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContentPayload) ProtoMessage() {}

func (x *ContentPayload) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContentPayload.ProtoReflect.Descriptor instead.
func (*ContentPayload) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{1}
}

func (x *ContentPayload) GetContents() []*v1.Content {
	if x != nil {
		return x.Contents
	}
	return nil
}

// RemindPayload carries the recipient's own pending content id lists.
type RemindPayload struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	ViewedButNotStarted   []uint32               `protobuf:"varint,1,rep,packed,name=viewed_but_not_started,json=viewedButNotStarted,proto3" json:"viewed_but_not_started,omitempty"`
	StartedButNotFinished []uint32               `protobuf:"varint,2,rep,packed,name=started_but_not_finished,json=startedButNotFinished,proto3" json:"started_but_not_finished,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *RemindPayload) Reset() {
	*x = RemindPayload{}
	mi := &file_notification_v1_notification_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemindPayload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemindPayload) ProtoMessage() {}

func (x *RemindPayload) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemindPayload.ProtoReflect.Descriptor instead.
func (*RemindPayload) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{2}
}

func (x *RemindPayload) GetViewedButNotStarted() []uint32 {
	if x != nil {
		return x.ViewedButNotStarted
	}
	return nil
}

func (x *RemindPayload) GetStartedButNotFinished() []uint32 {
	if x != nil {
		return x.StartedButNotFinished
	}
	return nil
}

type SendResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Receipt for the accepted stream, not per-message delivery confirmation.
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	Accepted      uint32                 `protobuf:"varint,2,opt,name=accepted,proto3" json:"accepted,omitempty"`
	Timestamp     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendResponse) Reset() {
	*x = SendResponse{}
	mi := &file_notification_v1_notification_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendResponse) ProtoMessage() {}

func (x *SendResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notification_v1_notification_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendResponse.ProtoReflect.Descriptor instead.
func (*SendResponse) Descriptor() ([]byte, []int) {
	return file_notification_v1_notification_proto_rawDescGZIP(), []int{3}
}

func (x *SendResponse) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *SendResponse) GetAccepted() uint32 {
	if x != nil {
		return x.Accepted
	}
	return 0
}

func (x *SendResponse) GetTimestamp() *timestamppb.Timestamp {
	if x != nil {
		return x.Timestamp
	}
	return nil
}

var File_notification_v1_notification_proto protoreflect.FileDescriptor

const file_notification_v1_notification_proto_rawDesc = "" +
	"\n" +
	"\"notification/v1/notification.proto\x12\x0fnotification.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1ametadata/v1/metadata.proto\"\xe5\x01\n" +
	"\vSendRequest\x12\x1a\n" +
	"\bcampaign\x18\x01 \x01(\tR\bcampaign\x12\x16\n" +
	"\x06sender\x18\x02 \x01(\tR\x06sender\x12\x1e\n" +
	"\n" +
	"recipients\x18\x03 \x03(\tR\n" +
	"recipients\x12=\n" +
	"\bcontents\x18\x04 \x01(\v2\x1f.notification.v1.ContentPayloadH\x00R\bcontents\x128\n" +
	"\x06remind\x18\x05 \x01(\v2\x1e.notification.v1.RemindPayloadH\x00R\x06remindB\t\n" +
	"\apayload\"B\n" +
	"\x0eContentPayload\x120\n" +
	"\bcontents\x18\x01 \x03(\v2\x14.metadata.v1.ContentR\bcontents\"}\n" +
	"\rRemindPayload\x123\n" +
	"\x16viewed_but_not_started\x18\x01 \x03(\rR\x13viewedButNotStarted\x127\n" +
	"\x18started_but_not_finished\x18\x02 \x03(\rR\x15startedButNotFinished\"\x83\x01\n" +
	"\fSendResponse\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\x12\x1a\n" +
	"\baccepted\x18\x02 \x01(\rR\baccepted\x128\n" +
	"\ttimestamp\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\ttimestamp2\\\n" +
	"\x13NotificationService\x12E\n" +
	"\x04Send\x12\x1c.notification.v1.SendRequest\x1a\x1d.notification.v1.SendResponse(\x01BDZBgithub.com/kailanyue/crm/api/gen/go/notification/v1;notificationv1b\x06proto3"

var (
	file_notification_v1_notification_proto_rawDescOnce sync.Once
	file_notification_v1_notification_proto_rawDescData []byte
)

func file_notification_v1_notification_proto_rawDescGZIP() []byte {
	file_notification_v1_notification_proto_rawDescOnce.Do(func() {
		file_notification_v1_notification_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_notification_v1_notification_proto_rawDesc), len(file_notification_v1_notification_proto_rawDesc)))
	})
	return file_notification_v1_notification_proto_rawDescData
}

var file_notification_v1_notification_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_notification_v1_notification_proto_goTypes = []any{
	(*SendRequest)(nil),           // 0: notification.v1.SendRequest
	(*ContentPayload)(nil),        // 1: notification.v1.ContentPayload
	(*RemindPayload)(nil),         // 2: notification.v1.RemindPayload
	(*SendResponse)(nil),          // 3: notification.v1.SendResponse
	(*v1.Content)(nil),            // 4: metadata.v1.Content
	(*timestamppb.Timestamp)(nil), // 5: google.protobuf.Timestamp
}
var file_notification_v1_notification_proto_depIdxs = []int32{
	1, // 0: notification.v1.SendRequest.contents:type_name -> notification.v1.ContentPayload
	2, // 1: notification.v1.SendRequest.remind:type_name -> notification.v1.RemindPayload
	4, // 2: notification.v1.ContentPayload.contents:type_name -> metadata.v1.Content
	5, // 3: notification.v1.SendResponse.timestamp:type_name -> google.protobuf.Timestamp
	0, // 4: notification.v1.NotificationService.Send:input_type -> notification.v1.SendRequest
	3, // 5: notification.v1.NotificationService.Send:output_type -> notification.v1.SendResponse
	5, // [5:6] is the sub-list for method output_type
	4, // [4:5] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_notification_v1_notification_proto_init() }
func file_notification_v1_notification_proto_init() {
	if File_notification_v1_notification_proto != nil {
		return
	}
	file_notification_v1_notification_proto_msgTypes[0].OneofWrappers = []any{
		(*SendRequest_Contents)(nil),
		(*SendRequest_Remind)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_notification_v1_notification_proto_rawDesc), len(file_notification_v1_notification_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_notification_v1_notification_proto_goTypes,
		DependencyIndexes: file_notification_v1_notification_proto_depIdxs,
		MessageInfos:      file_notification_v1_notification_proto_msgTypes,
	}.Build()
	File_notification_v1_notification_proto = out.File
	file_notification_v1_notification_proto_goTypes = nil
	file_notification_v1_notification_proto_depIdxs = nil
}
