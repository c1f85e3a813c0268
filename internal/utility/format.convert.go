package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID 문자열을 ObjectID로 변환한다. 실패하면 NilObjectID를 반환한다.
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// ObjectID2String ObjectID를 hex 문자열로 변환한다
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// StringArray2ObjectIDArray 문자열 배열을 ObjectID 배열로 변환한다
func StringArray2ObjectIDArray(ids []string) []primitive.ObjectID {
	var objectIDs []primitive.ObjectID
	for _, id := range ids {
		objectIDs = append(objectIDs, String2ObjectID(id))
	}
	return objectIDs
}
