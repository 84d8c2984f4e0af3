package message

import "fmt"

const PartitionNumber = 5

// RedisPartition is one of the job lists the analysis engines consume.
type RedisPartition int

func (r RedisPartition) ListKey() string {
	return fmt.Sprintf("sim:partition:%d", r)
}

func (r RedisPartition) OwnerKey() string {
	return fmt.Sprintf("sim:partition:%d:owner", r)
}

func (r RedisPartition) LockName() string {
	return fmt.Sprintf("sim:partition:%d:lock", r)
}

var RedisPartitions []RedisPartition

func init() {
	for i := range PartitionNumber {
		RedisPartitions = append(RedisPartitions, RedisPartition(i+1))
	}
}
