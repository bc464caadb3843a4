package game

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
)

// MaxRecords 排行榜保留的最大记录数
const MaxRecords = 10

// RecordDateLayout 记录日期格式（dd.mm.yyyy）
const RecordDateLayout = "02.01.2006"

// GameRecord 一局完成后的成绩记录
type GameRecord struct {
	Weapon string `json:"weapon"` // 武器名称快照
	Mode   string `json:"mode"`   // 模式显示名称
	Time   int    `json:"time"`   // 用时（秒）
	Score  int    `json:"score"`  // 分数（含完成奖励）
	Date   string `json:"date"`   // 完成日期
}

// KeyValueStore 键值存储接口
// 实现见 pkg/storage
type KeyValueStore interface {
	// Get 读取键对应的值，键不存在时返回 ok=false
	Get(key string) (value []byte, ok bool, err error)
	// Set 写入键值
	Set(key string, value []byte) error
}

// RecordStore 排行榜存储
//
// 职责：
//   - 从键值存储读取排行榜（损坏或不可读时视为空列表）
//   - 插入新记录并保持按分数降序、最多 MaxRecords 条
//   - 将完整列表写回键值存储
type RecordStore struct {
	kv  KeyValueStore
	key string
}

// NewRecordStore 创建排行榜存储
//
// 参数：
//   - kv: 键值存储后端
//   - key: 排行榜使用的固定键
func NewRecordStore(kv KeyValueStore, key string) *RecordStore {
	return &RecordStore{kv: kv, key: key}
}

// Load 读取排行榜
// 读取或解析失败时记录警告并返回空列表，不向玩家暴露错误
func (rs *RecordStore) Load() []GameRecord {
	data, ok, err := rs.kv.Get(rs.key)
	if err != nil {
		log.Printf("[RecordStore] Warning: failed to read records: %v (treating as empty)", err)
		return []GameRecord{}
	}
	if !ok || len(data) == 0 {
		return []GameRecord{}
	}

	var records []GameRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("[RecordStore] Warning: corrupt records: %v (treating as empty)", err)
		return []GameRecord{}
	}
	if records == nil {
		return []GameRecord{}
	}
	return records
}

// Save 将完整的排行榜写入存储
func (rs *RecordStore) Save(records []GameRecord) error {
	if records == nil {
		records = []GameRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := rs.kv.Set(rs.key, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// Add 插入一条记录并保存，返回保存后的排行榜
func (rs *RecordStore) Add(record GameRecord) ([]GameRecord, error) {
	records := InsertRecord(rs.Load(), record)
	if err := rs.Save(records); err != nil {
		return records, err
	}
	log.Printf("[RecordStore] Record saved: %s/%s score=%d time=%ds (%d records)",
		record.Weapon, record.Mode, record.Score, record.Time, len(records))
	return records, nil
}

// InsertRecord 将记录追加到列表，按分数降序排序并截断到 MaxRecords 条
// 不修改传入的切片；同分记录保持原有先后顺序
func InsertRecord(records []GameRecord, record GameRecord) []GameRecord {
	out := make([]GameRecord, 0, len(records)+1)
	out = append(out, records...)
	out = append(out, record)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > MaxRecords {
		out = out[:MaxRecords]
	}
	return out
}
