// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: microgrid.proto

package microgrid_pb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
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

// ComponentCategory classifies a microgrid component.
type ComponentCategory int32

const (
	ComponentCategory_COMPONENT_CATEGORY_UNSPECIFIED ComponentCategory = 0
	ComponentCategory_COMPONENT_CATEGORY_GRID        ComponentCategory = 1
	ComponentCategory_COMPONENT_CATEGORY_METER       ComponentCategory = 2
	ComponentCategory_COMPONENT_CATEGORY_INVERTER    ComponentCategory = 3
	ComponentCategory_COMPONENT_CATEGORY_BATTERY     ComponentCategory = 4
	ComponentCategory_COMPONENT_CATEGORY_EV_CHARGER  ComponentCategory = 5
	ComponentCategory_COMPONENT_CATEGORY_CHP         ComponentCategory = 6
)

// Enum value maps for ComponentCategory.
var (
	ComponentCategory_name = map[int32]string{
		0: "COMPONENT_CATEGORY_UNSPECIFIED",
		1: "COMPONENT_CATEGORY_GRID",
		2: "COMPONENT_CATEGORY_METER",
		3: "COMPONENT_CATEGORY_INVERTER",
		4: "COMPONENT_CATEGORY_BATTERY",
		5: "COMPONENT_CATEGORY_EV_CHARGER",
		6: "COMPONENT_CATEGORY_CHP",
	}
	ComponentCategory_value = map[string]int32{
		"COMPONENT_CATEGORY_UNSPECIFIED": 0,
		"COMPONENT_CATEGORY_GRID":        1,
		"COMPONENT_CATEGORY_METER":       2,
		"COMPONENT_CATEGORY_INVERTER":    3,
		"COMPONENT_CATEGORY_BATTERY":     4,
		"COMPONENT_CATEGORY_EV_CHARGER":  5,
		"COMPONENT_CATEGORY_CHP":         6,
	}
)

func (x ComponentCategory) Enum() *ComponentCategory {
	p := new(ComponentCategory)
	*p = x
	return p
}

func (x ComponentCategory) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ComponentCategory) Descriptor() protoreflect.EnumDescriptor {
	return file_microgrid_proto_enumTypes[0].Descriptor()
}

func (ComponentCategory) Type() protoreflect.EnumType {
	return &file_microgrid_proto_enumTypes[0]
}

func (x ComponentCategory) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ComponentCategory.Descriptor instead.
func (ComponentCategory) EnumDescriptor() ([]byte, []int) {
	return file_microgrid_proto_rawDescGZIP(), []int{0}
}

// Component describes a single microgrid component.
type Component struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            uint64                 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Category      ComponentCategory      `protobuf:"varint,2,opt,name=category,proto3,enum=microgrid.ComponentCategory" json:"category,omitempty"`
	Manufacturer  string                 `protobuf:"bytes,3,opt,name=manufacturer,proto3" json:"manufacturer,omitempty"`
	Model         string                 `protobuf:"bytes,4,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Component) Reset() {
	*x = Component{}
	mi := &file_microgrid_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Component) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Component) ProtoMessage() {}

func (x *Component) ProtoReflect() protoreflect.Message {
	mi := &file_microgrid_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Component.ProtoReflect.Descriptor instead.
func (*Component) Descriptor() ([]byte, []int) {
	return file_microgrid_proto_rawDescGZIP(), []int{0}
}

func (x *Component) GetId() uint64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Component) GetCategory() ComponentCategory {
	if x != nil {
		return x.Category
	}
	return ComponentCategory_COMPONENT_CATEGORY_UNSPECIFIED
}

func (x *Component) GetManufacturer() string {
	if x != nil {
		return x.Manufacturer
	}
	return ""
}

func (x *Component) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

// ComponentFilter selects components by id and/or category.
// An empty filter matches all components.
type ComponentFilter struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ids           []uint64               `protobuf:"varint,1,rep,packed,name=ids,proto3" json:"ids,omitempty"`
	Categories    []ComponentCategory    `protobuf:"varint,2,rep,packed,name=categories,proto3,enum=microgrid.ComponentCategory" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ComponentFilter) Reset() {
	*x = ComponentFilter{}
	mi := &file_microgrid_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComponentFilter) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComponentFilter) ProtoMessage() {}

func (x *ComponentFilter) ProtoReflect() protoreflect.Message {
	mi := &file_microgrid_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComponentFilter.ProtoReflect.Descriptor instead.
func (*ComponentFilter) Descriptor() ([]byte, []int) {
	return file_microgrid_proto_rawDescGZIP(), []int{1}
}

func (x *ComponentFilter) GetIds() []uint64 {
	if x != nil {
		return x.Ids
	}
	return nil
}

func (x *ComponentFilter) GetCategories() []ComponentCategory {
	if x != nil {
		return x.Categories
	}
	return nil
}

// ComponentList is the response of ListComponents.
type ComponentList struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Components    []*Component           `protobuf:"bytes,1,rep,name=components,proto3" json:"components,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ComponentList) Reset() {
	*x = ComponentList{}
	mi := &file_microgrid_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComponentList) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComponentList) ProtoMessage() {}

func (x *ComponentList) ProtoReflect() protoreflect.Message {
	mi := &file_microgrid_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComponentList.ProtoReflect.Descriptor instead.
func (*ComponentList) Descriptor() ([]byte, []int) {
	return file_microgrid_proto_rawDescGZIP(), []int{2}
}

func (x *ComponentList) GetComponents() []*Component {
	if x != nil {
		return x.Components
	}
	return nil
}

// Connection is a directed electrical connection between two components,
// from the component closer to the grid (start) to the one further away (end).
type Connection struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Start         uint64                 `protobuf:"varint,1,opt,name=start,proto3" json:"start,omitempty"`
	End           uint64                 `protobuf:"varint,2,opt,name=end,proto3" json:"end,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Connection) Reset() {
	*x = Connection{}
	mi := &file_microgrid_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Connection) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Connection) ProtoMessage() {}

func (x *Connection) ProtoReflect() protoreflect.Message {
	mi := &file_microgrid_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Connection.ProtoReflect.Descriptor instead.
func (*Connection) Descriptor() ([]byte, []int) {
	return file_microgrid_proto_rawDescGZIP(), []int{3}
}

func (x *Connection) GetStart() uint64 {
	if x != nil {
		return x.Start
	}
	return 0
}

func (x *Connection) GetEnd() uint64 {
	if x != nil {
		return x.End
	}
	return 0
}

// ConnectionFilter selects connections by their endpoints.
// An empty filter matches all connections.
type ConnectionFilter struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Starts        []uint64               `protobuf:"varint,1,rep,packed,name=starts,proto3" json:"starts,omitempty"`
	Ends          []uint64               `protobuf:"varint,2,rep,packed,name=ends,proto3" json:"ends,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConnectionFilter) Reset() {
	*x = ConnectionFilter{}
	mi := &file_microgrid_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConnectionFilter) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConnectionFilter) ProtoMessage() {}

func (x *ConnectionFilter) ProtoReflect() protoreflect.Message {
	mi := &file_microgrid_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConnectionFilter.ProtoReflect.Descriptor instead.
func (*ConnectionFilter) Descriptor() ([]byte, []int) {
	return file_microgrid_proto_rawDescGZIP(), []int{4}
}

func (x *ConnectionFilter) GetStarts() []uint64 {
	if x != nil {
		return x.Starts
	}
	return nil
}

func (x *ConnectionFilter) GetEnds() []uint64 {
	if x != nil {
		return x.Ends
	}
	return nil
}

// ConnectionList is the response of ListConnections.
type ConnectionList struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Connections   []*Connection          `protobuf:"bytes,1,rep,name=connections,proto3" json:"connections,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConnectionList) Reset() {
	*x = ConnectionList{}
	mi := &file_microgrid_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConnectionList) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConnectionList) ProtoMessage() {}

func (x *ConnectionList) ProtoReflect() protoreflect.Message {
	mi := &file_microgrid_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConnectionList.ProtoReflect.Descriptor instead.
func (*ConnectionList) Descriptor() ([]byte, []int) {
	return file_microgrid_proto_rawDescGZIP(), []int{5}
}

func (x *ConnectionList) GetConnections() []*Connection {
	if x != nil {
		return x.Connections
	}
	return nil
}

// PowerLevelParam is the request of SetPowerActive.
type PowerLevelParam struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	ComponentId uint64                 `protobuf:"varint,1,opt,name=component_id,json=componentId,proto3" json:"component_id,omitempty"`
	// Requested active power in watts. Negative values mean the component
	// consumes power, positive values mean it supplies power.
	PowerW        int64 `protobuf:"zigzag64,2,opt,name=power_w,json=powerW,proto3" json:"power_w,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PowerLevelParam) Reset() {
	*x = PowerLevelParam{}
	mi := &file_microgrid_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PowerLevelParam) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PowerLevelParam) ProtoMessage() {}

func (x *PowerLevelParam) ProtoReflect() protoreflect.Message {
	mi := &file_microgrid_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PowerLevelParam.ProtoReflect.Descriptor instead.
func (*PowerLevelParam) Descriptor() ([]byte, []int) {
	return file_microgrid_proto_rawDescGZIP(), []int{6}
}

func (x *PowerLevelParam) GetComponentId() uint64 {
	if x != nil {
		return x.ComponentId
	}
	return 0
}

func (x *PowerLevelParam) GetPowerW() int64 {
	if x != nil {
		return x.PowerW
	}
	return 0
}

var File_microgrid_proto protoreflect.FileDescriptor

const file_microgrid_proto_rawDesc = "" +
	"\n" +
	"\x0fmicrogrid.proto\x12\tmicrogrid\x1a\x1bgoogle/protobuf/empty.proto\"\x8f\x01\n" +
	"\tComponent\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x04R\x02id\x128\n" +
	"\bcategory\x18\x02 \x01(\x0e2\x1c.microgrid.ComponentCategoryR\bcategory\x12\"\n" +
	"\fmanufacturer\x18\x03 \x01(\tR\fmanufacturer\x12\x14\n" +
	"\x05model\x18\x04 \x01(\tR\x05model\"a\n" +
	"\x0fComponentFilter\x12\x10\n" +
	"\x03ids\x18\x01 \x03(\x04R\x03ids\x12<\n" +
	"\n" +
	"categories\x18\x02 \x03(\x0e2\x1c.microgrid.ComponentCategoryR\n" +
	"categories\"E\n" +
	"\rComponentList\x124\n" +
	"\n" +
	"components\x18\x01 \x03(\v2\x14.microgrid.ComponentR\n" +
	"components\"4\n" +
	"\n" +
	"Connection\x12\x14\n" +
	"\x05start\x18\x01 \x01(\x04R\x05start\x12\x10\n" +
	"\x03end\x18\x02 \x01(\x04R\x03end\">\n" +
	"\x10ConnectionFilter\x12\x16\n" +
	"\x06starts\x18\x01 \x03(\x04R\x06starts\x12\x12\n" +
	"\x04ends\x18\x02 \x03(\x04R\x04ends\"I\n" +
	"\x0eConnectionList\x127\n" +
	"\vconnections\x18\x01 \x03(\v2\x15.microgrid.ConnectionR\vconnections\"M\n" +
	"\x0fPowerLevelParam\x12!\n" +
	"\fcomponent_id\x18\x01 \x01(\x04R\vcomponentId\x12\x17\n" +
	"\apower_w\x18\x02 \x01(\x12R\x06powerW*\xf2\x01\n" +
	"\x11ComponentCategory\x12\"\n" +
	"\x1eCOMPONENT_CATEGORY_UNSPECIFIED\x10\x00\x12\x1b\n" +
	"\x17COMPONENT_CATEGORY_GRID\x10\x01\x12\x1c\n" +
	"\x18COMPONENT_CATEGORY_METER\x10\x02\x12\x1f\n" +
	"\x1bCOMPONENT_CATEGORY_INVERTER\x10\x03\x12\x1e\n" +
	"\x1aCOMPONENT_CATEGORY_BATTERY\x10\x04\x12!\n" +
	"\x1dCOMPONENT_CATEGORY_EV_CHARGER\x10\x05\x12\x1a\n" +
	"\x16COMPONENT_CATEGORY_CHP\x10\x062\xe4\x01\n" +
	"\tMicrogrid\x12F\n" +
	"\x0eListComponents\x12\x1a.microgrid.ComponentFilter\x1a\x18.microgrid.ComponentList\x12I\n" +
	"\x0fListConnections\x12\x1b.microgrid.ConnectionFilter\x1a\x19.microgrid.ConnectionList\x12D\n" +
	"\x0eSetPowerActive\x12\x1a.microgrid.PowerLevelParam\x1a\x16.google.protobuf.EmptyBBZ@github.com/frequenz-floss/microgrid-client-go/proto;microgrid_pbb\x06proto3"

var (
	file_microgrid_proto_rawDescOnce sync.Once
	file_microgrid_proto_rawDescData []byte
)

func file_microgrid_proto_rawDescGZIP() []byte {
	file_microgrid_proto_rawDescOnce.Do(func() {
		file_microgrid_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_microgrid_proto_rawDesc), len(file_microgrid_proto_rawDesc)))
	})
	return file_microgrid_proto_rawDescData
}

var file_microgrid_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_microgrid_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_microgrid_proto_goTypes = []any{
	(ComponentCategory)(0),   // 0: microgrid.ComponentCategory
	(*Component)(nil),        // 1: microgrid.Component
	(*ComponentFilter)(nil),  // 2: microgrid.ComponentFilter
	(*ComponentList)(nil),    // 3: microgrid.ComponentList
	(*Connection)(nil),       // 4: microgrid.Connection
	(*ConnectionFilter)(nil), // 5: microgrid.ConnectionFilter
	(*ConnectionList)(nil),   // 6: microgrid.ConnectionList
	(*PowerLevelParam)(nil),  // 7: microgrid.PowerLevelParam
	(*emptypb.Empty)(nil),    // 8: google.protobuf.Empty
}
var file_microgrid_proto_depIdxs = []int32{
	0, // 0: microgrid.Component.category:type_name -> microgrid.ComponentCategory
	0, // 1: microgrid.ComponentFilter.categories:type_name -> microgrid.ComponentCategory
	1, // 2: microgrid.ComponentList.components:type_name -> microgrid.Component
	4, // 3: microgrid.ConnectionList.connections:type_name -> microgrid.Connection
	2, // 4: microgrid.Microgrid.ListComponents:input_type -> microgrid.ComponentFilter
	5, // 5: microgrid.Microgrid.ListConnections:input_type -> microgrid.ConnectionFilter
	7, // 6: microgrid.Microgrid.SetPowerActive:input_type -> microgrid.PowerLevelParam
	3, // 7: microgrid.Microgrid.ListComponents:output_type -> microgrid.ComponentList
	6, // 8: microgrid.Microgrid.ListConnections:output_type -> microgrid.ConnectionList
	8, // 9: microgrid.Microgrid.SetPowerActive:output_type -> google.protobuf.Empty
	7, // [7:10] is the sub-list for method output_type
	4, // [4:7] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_microgrid_proto_init() }
func file_microgrid_proto_init() {
	if File_microgrid_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_microgrid_proto_rawDesc), len(file_microgrid_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_microgrid_proto_goTypes,
		DependencyIndexes: file_microgrid_proto_depIdxs,
		EnumInfos:         file_microgrid_proto_enumTypes,
		MessageInfos:      file_microgrid_proto_msgTypes,
	}.Build()
	File_microgrid_proto = out.File
	file_microgrid_proto_goTypes = nil
	file_microgrid_proto_depIdxs = nil
}
