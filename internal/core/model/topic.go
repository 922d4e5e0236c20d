package model

import "fmt"

// Topic is one contiguous span of the source transcript.
type Topic struct {
	Title      string `json:"title"`
	Transcript string `json:"transcript"`
}

// Topics is the segmentation document: topic_key -> Topic, in discussion order.
type Topics = Ordered[Topic]

// TopicKey returns the key for the i-th topic, counting from 1.
func TopicKey(i int) string {
	return fmt.Sprintf("topic_%d", i)
}
