package basesvc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type parentWithChildren struct {
	Name           string   `bson:"name"`
	_Relationships struct{} `relationship:"collection:children,field:parentId,label:children,message:Không thể xóa vì có %d bản ghi con."`
}

type parentMultiRelation struct {
	Name           string   `bson:"name"`
	_Relationships struct{} `relationship:"collection:orders,field:customerId,label:orders|collection:notes,field:customerId,label:notes,cascade:true"`
}

type parentNoRelation struct {
	Name string `bson:"name"`
}

func TestParseRelationshipTag(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(parentWithChildren{}))
	assert.Len(t, rels, 1)
	assert.Equal(t, "children", rels[0].CollectionName)
	assert.Equal(t, "parentId", rels[0].FieldName)
	assert.Equal(t, "children", rels[0].Label)
	assert.Equal(t, "Không thể xóa vì có %d bản ghi con.", rels[0].ErrorMessage)
	assert.False(t, rels[0].Cascade)
}

func TestParseRelationshipTag_NhieuQuanHe(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(parentMultiRelation{}))
	assert.Len(t, rels, 2)

	assert.Equal(t, "orders", rels[0].CollectionName)
	assert.False(t, rels[0].Cascade)
	// Không khai báo message thì dùng message mặc định
	assert.Contains(t, rels[0].ErrorMessage, "orders")

	assert.Equal(t, "notes", rels[1].CollectionName)
	assert.True(t, rels[1].Cascade)
}

func TestParseRelationshipTag_KhongCoQuanHe(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(parentNoRelation{}))
	assert.Empty(t, rels)
}

func TestParseRelationshipTag_TagThieuCollection(t *testing.T) {
	type badTag struct {
		_Relationships struct{} `relationship:"field:parentId"`
	}
	rels := ParseRelationshipTag(reflect.TypeOf(badTag{}))
	assert.Empty(t, rels, "quan hệ thiếu collection phải bị bỏ qua")
}
