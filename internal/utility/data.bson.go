package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// CustomBson struct 기반으로 $set, $push 등의 bson 갱신 쿼리를 만드는 헬퍼
type CustomBson struct{}

// BsonWrapper 기본 bson 갱신 연산자 래퍼.
// struct를 담아 bson으로 인코딩하면 { $set: {...} } 형태의 쿼리가 된다.
type BsonWrapper struct {
	// Set 필드 값을 지정한 값으로 교체한다
	Set interface{} `json:"$set,omitempty" bson:"$set,omitempty"`

	// Unset 지정한 필드를 제거한다. 필드가 없으면 아무 일도 하지 않는다
	Unset interface{} `json:"$unset,omitempty" bson:"$unset,omitempty"`

	// Push 배열 필드에 값을 추가한다. 배열이 아닌 필드면 실패한다
	Push interface{} `json:"$push,omitempty" bson:"$push,omitempty"`

	// AddToSet 배열에 값이 없을 때만 추가한다
	AddToSet interface{} `json:"$addToSet,omitempty" bson:"$addToSet,omitempty"`
}

// ToMap struct를 bson 왕복으로 map[string]interface{} 로 변환한다
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	err = bson.Unmarshal(itr, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, err
}

// Set $set 쿼리 맵을 생성한다
func (customBson *CustomBson) Set(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Set: data}
	return ToMap(s)
}

// Push $push 쿼리 맵을 생성한다
func (customBson *CustomBson) Push(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Push: data}
	return ToMap(s)
}

// Unset $unset 쿼리 맵을 생성한다
func (customBson *CustomBson) Unset(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Unset: data}
	return ToMap(s)
}

// AddToSet $addToSet 쿼리 맵을 생성한다
func (customBson *CustomBson) AddToSet(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{AddToSet: data}
	return ToMap(s)
}
