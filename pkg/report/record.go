// pkg/report/record.go
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lk2023060901/xintegrity/pkg/fingerprint"
	"github.com/lk2023060901/xintegrity/pkg/pool/bytebuff"
	"github.com/lk2023060901/xintegrity/pkg/validator"
)

// Record 对外上报的校验/指纹记录
// 适合作为响应头或审计日志行输出
type Record struct {
	// ID 记录标识，用于审计关联
	ID string

	// ChecksumHex 8 位小写十六进制、零填充的校验和
	ChecksumHex string

	// Size 内容大小（字节）
	Size uint64

	// Strategy 策略名称
	Strategy string

	// Status 校验结论，指纹记录中为空
	Status string

	// ElapsedMS 耗时（毫秒）
	ElapsedMS int64
}

// ChecksumHex 渲染校验和的规范形式
// 必须先按无符号 32 位解释再转十六进制，逐位精确：
// 某些宿主上快速校验算法会产出可被解释为负数的值
func ChecksumHex(v uint32) string {
	return fmt.Sprintf("%08x", v)
}

// FromFingerprint 从指纹构造记录
func FromFingerprint(fp fingerprint.Fingerprint, elapsed time.Duration) Record {
	return Record{
		ID:          uuid.NewString(),
		ChecksumHex: ChecksumHex(fp.Checksum),
		Size:        fp.Size,
		Strategy:    fp.Strategy.Name(),
		ElapsedMS:   elapsed.Milliseconds(),
	}
}

// FromReport 从校验报告构造记录
func FromReport(r *validator.Report, size uint64) Record {
	return Record{
		ID:          uuid.NewString(),
		ChecksumHex: ChecksumHex(r.Checksum),
		Size:        size,
		Strategy:    r.Strategy.Name(),
		Status:      r.Status.Name(),
		ElapsedMS:   r.Elapsed.Milliseconds(),
	}
}

// Headers 渲染为响应头映射
// 供 CDN 缓存校验等场景直接写入 HTTP 响应
func (r Record) Headers() map[string]string {
	h := map[string]string{
		"X-Content-Checksum":    r.ChecksumHex,
		"X-Content-Size":        strconv.FormatUint(r.Size, 10),
		"X-Checksum-Strategy":   r.Strategy,
		"X-Checksum-Elapsed-Ms": strconv.FormatInt(r.ElapsedMS, 10),
	}
	if r.Status != "" {
		h["X-Validation-Status"] = r.Status
	}
	return h
}

// LogLine 渲染为单行 key=value 日志
func (r Record) LogLine() string {
	buf := bytebuff.GetByteBuffer()
	defer bytebuff.PutByteBuffer(buf)

	buf.WriteString("id=")
	buf.WriteString(r.ID)
	buf.WriteString(" checksum=")
	buf.WriteString(r.ChecksumHex)
	buf.WriteString(" size=")
	buf.WriteString(strconv.FormatUint(r.Size, 10))
	buf.WriteString(" strategy=")
	buf.WriteString(r.Strategy)
	if r.Status != "" {
		buf.WriteString(" status=")
		buf.WriteString(r.Status)
	}
	buf.WriteString(" elapsed_ms=")
	buf.WriteString(strconv.FormatInt(r.ElapsedMS, 10))

	return buf.String()
}
